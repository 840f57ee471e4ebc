package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/hanzicards/pinyin"
)

const sampleExport = "关系[關係]\tguan1xi5\tnoun connections; relations\n" +
	"你好\tni3hao3\n" +
	"谢谢[謝謝]\txie4xie5\tthank you\n"

func TestRead_SkipsBadRecordAndContinues(t *testing.T) {
	batch, err := NewReader(PolicyAbort).Read(strings.NewReader(sampleExport))
	require.NoError(t, err)

	require.Len(t, batch.Entries, 2)
	assert.Equal(t, Entry{
		FrontText: "关系\n[關係]",
		Romanized: "gu\u0304anxi",
		Raw:       "guan1xi5",
		Gloss:     "noun connections; relations",
	}, batch.Entries[0])
	assert.Equal(t, "谢谢\n[謝謝]", batch.Entries[1].FrontText)
	assert.Equal(t, "xie\u0300xie", batch.Entries[1].Romanized)

	require.Len(t, batch.Failures, 1)
	f := batch.Failures[0]
	assert.Equal(t, 2, f.Line)
	assert.Equal(t, "你好\tni3hao3", f.Raw)
	assert.ErrorIs(t, f.Err, ErrBadRecord)
	assert.Equal(t, "*** Failed to decompose: 你好\tni3hao3", f.String())

	assert.Equal(t, Stats{TotalLines: 3, BadRecords: 1, EntriesCreated: 2}, batch.Stats)
}

func TestRead_MalformedRomanizationAbort(t *testing.T) {
	in := "好\thao3\tgood\n坏\thuai\tbad\n"
	_, err := NewReader(PolicyAbort).Read(strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, pinyin.ErrMalformedRomanization)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRead_MalformedRomanizationSkip(t *testing.T) {
	in := "好\thao3\tgood\n坏\thuai\tbad\n大\tda4\tbig\n"
	batch, err := NewReader(PolicySkip).Read(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, batch.Entries, 2)
	assert.Equal(t, "好", batch.Entries[0].FrontText)
	assert.Equal(t, "大", batch.Entries[1].FrontText)

	require.Len(t, batch.Failures, 1)
	assert.Equal(t, "坏\thuai\tbad", batch.Failures[0].Raw)
	assert.ErrorIs(t, batch.Failures[0].Err, pinyin.ErrMalformedRomanization)
	assert.Equal(t, 1, batch.Stats.BadRomanized)
}

func TestRead_StripsBOMAndWhitespace(t *testing.T) {
	in := "\ufeff好\thao3\tgood  \r\n"
	batch, err := NewReader(PolicyAbort).Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, batch.Entries, 1)
	assert.Equal(t, "好", batch.Entries[0].FrontText)
	assert.Equal(t, "good", batch.Entries[0].Gloss)
}

func TestRead_BlankLineIsReported(t *testing.T) {
	batch, err := NewReader(PolicyAbort).Read(strings.NewReader("好\thao3\tgood\n\n"))
	require.NoError(t, err)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, 2, batch.Failures[0].Line)
	assert.Empty(t, batch.Failures[0].Raw)
}

func TestRead_VeryLongLines(t *testing.T) {
	longGloss := strings.Repeat("g", 2<<20)
	longJunk := strings.Repeat("x", 2<<20)
	in := "好\thao3\tgood\n" +
		"长\tchang2\t" + longGloss + "\n" +
		longJunk + "\n" +
		"你好\tni3hao3\thello"

	batch, err := NewReader(PolicySkip).Read(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, batch.Entries, 3)
	assert.Len(t, batch.Entries[1].Gloss, len(longGloss))
	assert.Equal(t, "你好", batch.Entries[2].FrontText)

	require.Len(t, batch.Failures, 1)
	assert.Equal(t, 3, batch.Failures[0].Line)
	assert.ErrorIs(t, batch.Failures[0].Err, ErrBadRecord)
	assert.Equal(t, 4, batch.Stats.TotalLines)
}

func TestRead_LastLineWithoutNewline(t *testing.T) {
	batch, err := NewReader(PolicyAbort).Read(strings.NewReader("好\thao3\tgood"))
	require.NoError(t, err)
	require.Len(t, batch.Entries, 1)
	assert.Equal(t, 1, batch.Stats.TotalLines)
	assert.Empty(t, batch.Failures)
}

func TestParseRecord(t *testing.T) {
	rec, ok := ParseRecord("a\tb\tc")
	require.True(t, ok)
	assert.Equal(t, Record{Headword: "a", Pinyin: "b", Gloss: "c"}, rec)

	for _, line := range []string{"a\tb", "a\tb\tc\td", "", "abc"} {
		_, ok := ParseRecord(line)
		assert.False(t, ok, "%q", line)
	}
}

func TestFrontText(t *testing.T) {
	assert.Equal(t, "关系\n[關係]", FrontText("关系[關係]"))
	assert.Equal(t, "好", FrontText("好"))
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]MalformedPolicy{"": PolicyAbort, "abort": PolicyAbort, "SKIP": PolicySkip, " skip ": PolicySkip} {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePolicy("ignore")
	assert.Error(t, err)
	assert.Equal(t, "skip", PolicySkip.String())
}
