package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/elmparse/internal/model"
)

func TestNormalizedKeywordsDedupesInflections(t *testing.T) {
	lom := &model.LOM{
		General: model.General{
			Keyword: model.UnboundLangString{
				{Language: "en", Value: "Assessment"},
				{Language: "en", Value: "assessments"},
			},
		},
		Classifications: []model.Classification{
			{Keyword: model.UnboundLangString{{Language: "en", Value: "quiz"}}},
		},
	}

	got := lom.NormalizedKeywords()
	assert.Len(t, got, 2)
	assert.Contains(t, got, model.StemKeyword("assessment"))
	assert.Contains(t, got, model.StemKeyword("quiz"))
}

func TestStemKeywordLeavesShortWordsVerbatim(t *testing.T) {
	assert.Equal(t, "it", model.StemKeyword("IT"))
}

func TestStemKeywordEmptyInput(t *testing.T) {
	assert.Equal(t, "", model.StemKeyword("   "))
}
