package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	fetch := &FetchError{Locale: "fr-FR", Source: "https://example.com", Err: io.ErrUnexpectedEOF}
	assert.ErrorIs(t, fetch, ErrFetch)
	assert.ErrorIs(t, fetch, io.ErrUnexpectedEOF)
	assert.NotErrorIs(t, fetch, ErrParse)
	assert.Equal(t, "fetch fr-FR (https://example.com): unexpected EOF", fetch.Error())

	parse := &ParseError{Locale: "de-DE", Reason: "bloc <terms> manquant"}
	assert.ErrorIs(t, parse, ErrParse)
	assert.Equal(t, "parse de-DE: bloc <terms> manquant", parse.Error())

	conflict := &ConflictError{Locale: "fr-FR"}
	assert.ErrorIs(t, conflict, ErrConflict)
	assert.Contains(t, conflict.Error(), "fr-FR")
}

func TestCode(t *testing.T) {
	t.Parallel()

	fetch := &FetchError{Locale: "en-US", Source: "x"}
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("boom"), ""},
		{fetch, "fetch_failed"},
		{fmt.Errorf("load: %w", &ParseError{Locale: "x"}), "parse_failed"},
		{&ConflictError{Locale: "x"}, "conflict"},
		{fmt.Errorf("%w: %w", ErrReferenceUnavailable, fetch), "reference_unavailable"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Code(tc.err), fmt.Sprint(tc.err))
	}
}

func TestIsCSLVariable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCSLVariable("container-title"))
	assert.True(t, IsCSLVariable("DOI"))
	assert.False(t, IsCSLVariable("doi"))
	assert.False(t, IsCSLVariable(""))
}
