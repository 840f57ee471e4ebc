package deck

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ByLCY/hanzicards/pinyin"
)

const utf8BOM = "\ufeff"

// Failure 记录一条被跳过的输入行。
type Failure struct {
	Line int    // 从 1 开始的行号
	Raw  string // 原始行内容
	Err  error
}

func (f Failure) String() string {
	return fmt.Sprintf("*** Failed to decompose: %s", f.Raw)
}

// Stats holds reader statistics for logging.
type Stats struct {
	TotalLines     int
	BadRecords     int
	BadRomanized   int
	EntriesCreated int
}

// Batch 是一次读取的结果：按输入顺序排列的词条与失败列表。
type Batch struct {
	Entries  []Entry
	Failures []Failure
	Stats    Stats
}

// Reader 逐行读取导出文件，并对拼音做声调转换。
type Reader struct {
	Policy MalformedPolicy
}

// NewReader creates a Reader with the given malformed-romanization policy.
func NewReader(policy MalformedPolicy) *Reader {
	return &Reader{Policy: policy}
}

// Read 读取全部行，单行长度不受限制。字段数不对的行总是记入失败列表；
// 拼音无法解析时按 Policy 决定终止（返回错误）还是跳过。
func (r *Reader) Read(in io.Reader) (*Batch, error) {
	br := bufio.NewReader(in)

	batch := &Batch{}
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read line %d: %w", batch.Stats.TotalLines+1, err)
		}
		if line == "" && err == io.EOF {
			break
		}
		eof := err == io.EOF

		batch.Stats.TotalLines++
		lineNo := batch.Stats.TotalLines
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		if err := r.readLine(batch, lineNo, line); err != nil {
			return nil, err
		}
		if eof {
			break
		}
	}

	batch.Stats.EntriesCreated = len(batch.Entries)
	return batch, nil
}

// readLine 处理一行；只有 PolicyAbort 下的拼音错误会返回 error。
func (r *Reader) readLine(batch *Batch, lineNo int, line string) error {
	rec, ok := ParseRecord(line)
	if !ok {
		batch.Stats.BadRecords++
		batch.Failures = append(batch.Failures, Failure{Line: lineNo, Raw: line, Err: ErrBadRecord})
		return nil
	}

	romanized, err := pinyin.Tonify(rec.Pinyin)
	if err != nil {
		if r.Policy == PolicyAbort {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		batch.Stats.BadRomanized++
		batch.Failures = append(batch.Failures, Failure{Line: lineNo, Raw: line, Err: err})
		return nil
	}

	batch.Entries = append(batch.Entries, Entry{
		FrontText: FrontText(rec.Headword),
		Romanized: romanized,
		Raw:       rec.Pinyin,
		Gloss:     rec.Gloss,
	})
	return nil
}
