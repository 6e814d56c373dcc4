package autofill

import (
	"context"
	"errors"
	"testing"

	"stray-pets/internal/domain/listings"
	"stray-pets/internal/ports/geocoding"
	"stray-pets/internal/ports/inference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	text string
	err  error
	got  inference.Image
	inst string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, img inference.Image, instruction string) (string, error) {
	f.got = img
	f.inst = instruction
	return f.text, f.err
}

type fakeGeocoder struct {
	place geocoding.Place
	err   error
	calls int
}

func (f *fakeGeocoder) Reverse(_ context.Context, _, _ float64) (geocoding.Place, error) {
	f.calls++
	return f.place, f.err
}

func TestParseSuggestion_StripsFencesAndIgnoresCase(t *testing.T) {
	text := "```json\n{\"Breed\": \"Golden Retriever\", \"AGE\": 3, \"weight\": \"15.5\", \"condition\": \"Healthy coat\", \"feature\": null}\n```"

	s, err := ParseSuggestion(text)
	require.NoError(t, err)
	assert.Equal(t, Suggestion{Breed: "Golden Retriever", Age: "3", Weight: "15.5", Condition: "Healthy coat"}, s)
}

func TestParseSuggestion_Garbage(t *testing.T) {
	for _, text := range []string{"", "```json\n```", "I think it's a dog", "[1,2]", `{"breed": {"x": 1}}`} {
		_, err := ParseSuggestion(text)
		assert.ErrorIs(t, err, ErrAnalysisFailed, "text=%q", text)
	}
}

func TestAnalyze_SendsImageAndInstruction(t *testing.T) {
	a := &fakeAnalyzer{text: `{"breed":"Poodle"}`}
	svc := NewService(a, nil)

	s, err := svc.Analyze(context.Background(), []byte{0xff, 0xd8}, "")
	require.NoError(t, err)
	assert.Equal(t, "Poodle", s.Breed)
	assert.Equal(t, "image/jpeg", a.got.MIMEType)
	assert.Equal(t, Instruction, a.inst)
}

func TestAnalyze_FailuresAreAnalysisFailed(t *testing.T) {
	_, err := NewService(nil, nil).Analyze(context.Background(), []byte{1}, "image/png")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.ErrorIs(t, err, ErrNotConfigured)

	a := &fakeAnalyzer{err: errors.New("status 500")}
	_, err = NewService(a, nil).Analyze(context.Background(), []byte{1}, "image/png")
	assert.ErrorIs(t, err, ErrAnalysisFailed)

	_, err = NewService(a, nil).Analyze(context.Background(), nil, "image/png")
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

func TestSuggestion_ApplyToKeepsExistingWhenEmpty(t *testing.T) {
	l := listings.Listing{Name: "Max", Species: "dog", Age: "2", Contact: "010"}
	Suggestion{Breed: "Golden Retriever", Weight: "15", Age: " "}.ApplyTo(&l)

	assert.Equal(t, "Golden Retriever", l.Species)
	assert.Equal(t, "2", l.Age)
	assert.Equal(t, "15", l.Weight)
	assert.Equal(t, "Max", l.Name)
	assert.Equal(t, "010", l.Contact)
}

func TestLocate(t *testing.T) {
	g := &fakeGeocoder{place: geocoding.Place{AdminArea: "Seoul", Locality: "Gangnam-gu", Street: "Teheran-ro"}}
	svc := NewService(nil, g)

	loc, err := svc.Locate(context.Background(), 37.5, 127.03)
	require.NoError(t, err)
	assert.Equal(t, "Seoul Gangnam-gu Teheran-ro", loc)

	g.place = geocoding.Place{AdminArea: "Busan", Street: " "}
	loc, err = svc.Locate(context.Background(), 35.1, 129.0)
	require.NoError(t, err)
	assert.Equal(t, "Busan", loc)
}

func TestLocate_Errors(t *testing.T) {
	g := &fakeGeocoder{}
	svc := NewService(nil, g)

	_, err := svc.Locate(context.Background(), 91, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, g.calls)

	_, err = svc.Locate(context.Background(), 10, 10)
	assert.ErrorIs(t, err, ErrLookupFailed, "empty place")

	g.err = errors.New("timeout")
	_, err = svc.Locate(context.Background(), 10, 10)
	assert.ErrorIs(t, err, ErrLookupFailed)

	_, err = NewService(nil, nil).Locate(context.Background(), 10, 10)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
