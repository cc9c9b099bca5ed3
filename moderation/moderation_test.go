package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlag_CaseInsensitiveSubstring(t *testing.T) {
	m := New([]string{"badword", "Offensive"})
	assert.Equal(t, "badword", m.Flag("this contains a BadWord inside"))
	assert.Equal(t, "offensive", m.Flag("OFFENSIVE title"))
	assert.Equal(t, "", m.Flag("a perfectly fine page"))
}

func TestFlag_EmptyBlocklist(t *testing.T) {
	m := New(nil)
	assert.Equal(t, "", m.Flag("anything goes"))
}

func TestFlagAny_ChecksEveryText(t *testing.T) {
	m := New([]string{"inappropriate"})
	assert.Equal(t, "inappropriate", m.FlagAny("clean title", "page one", "This is inappropriate"))
	assert.Equal(t, "", m.FlagAny("clean title", "page one", "page two"))
}

func TestNew_TrimsAndDropsBlankTerms(t *testing.T) {
	m := New([]string{" spam ", "", "  "})
	assert.Equal(t, "spam", m.Flag("some SPAM here"))
	assert.Equal(t, "", m.Flag("no hits"))
}
