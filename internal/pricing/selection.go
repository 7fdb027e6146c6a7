package pricing

import (
	"github.com/google/uuid"

	"github.com/ratnex/ratnex-api/internal/domain/enum"
)

// Selection models the calculator's input-gathering flow as explicit state:
// metal, then (for old jewelry) source and item-category filter, then
// category, then resale sub-category, then weight. Changing any upstream
// field clears everything downstream of it together with the last result, so
// a stale pairing of inputs can never reach a pricer.
type Selection struct {
	Kind           enum.CategoryType `json:"kind"`
	Metal          *enum.Metal       `json:"metal,omitempty"`
	ItemCategory   string            `json:"item_category,omitempty"`
	Source         *enum.ScrapSource `json:"source,omitempty"`
	CategoryID     *uuid.UUID        `json:"category_id,omitempty"`
	ResaleCategory string            `json:"resale_category,omitempty"`
	WeightGrams    float64           `json:"weight_grams,omitempty"`
	HasResult      bool              `json:"has_result"`
}

// NewSelection starts an empty selection for one calculator kind.
func NewSelection(kind enum.CategoryType) Selection {
	return Selection{Kind: kind}
}

// SelectionEvent is one user action against the selection.
type SelectionEvent interface {
	isSelectionEvent()
}

// SelectMetal picks the metal; resets everything downstream.
type SelectMetal struct{ Metal enum.Metal }

// SelectItemCategory narrows the category list; resets category and below.
type SelectItemCategory struct{ Name string }

// SelectSource picks own/other for old jewelry; resets category and below.
type SelectSource struct{ Source enum.ScrapSource }

// SelectCategory picks the pricing category; resets resale, weight, result.
type SelectCategory struct{ ID uuid.UUID }

// SelectResaleCategory picks the resale sub-category; resets weight, result.
type SelectResaleCategory struct{ Name string }

// SetWeight enters the weight; clears only the last result.
type SetWeight struct{ Grams float64 }

// MarkCalculated records that a result exists for the current inputs.
type MarkCalculated struct{}

// Reset clears the whole selection.
type Reset struct{}

func (SelectMetal) isSelectionEvent()          {}
func (SelectItemCategory) isSelectionEvent()   {}
func (SelectSource) isSelectionEvent()         {}
func (SelectCategory) isSelectionEvent()       {}
func (SelectResaleCategory) isSelectionEvent() {}
func (SetWeight) isSelectionEvent()            {}
func (MarkCalculated) isSelectionEvent()       {}
func (Reset) isSelectionEvent()                {}

// Reduce applies one event to a selection and returns the next state.
// Pure: the input selection is never mutated.
func Reduce(s Selection, ev SelectionEvent) Selection {
	switch e := ev.(type) {
	case SelectMetal:
		next := NewSelection(s.Kind)
		m := e.Metal
		next.Metal = &m
		return next

	case SelectItemCategory:
		next := s
		next.ItemCategory = e.Name
		next.clearFromCategory()
		return next

	case SelectSource:
		if s.Kind != enum.CategoryTypeOld {
			return s
		}
		next := s
		src := e.Source
		next.Source = &src
		next.clearFromCategory()
		return next

	case SelectCategory:
		next := s
		id := e.ID
		next.CategoryID = &id
		next.clearFromResale()
		return next

	case SelectResaleCategory:
		if s.Kind != enum.CategoryTypeOld {
			return s
		}
		next := s
		next.ResaleCategory = e.Name
		next.clearFromWeight()
		return next

	case SetWeight:
		next := s
		next.WeightGrams = e.Grams
		next.HasResult = false
		return next

	case MarkCalculated:
		next := s
		next.HasResult = true
		return next

	case Reset:
		return NewSelection(s.Kind)
	}
	return s
}

// Ready reports whether every input a calculation needs has been gathered.
func (s Selection) Ready() bool {
	if s.Metal == nil || s.CategoryID == nil || s.WeightGrams <= 0 {
		return false
	}
	if s.Kind == enum.CategoryTypeOld && s.Source == nil {
		return false
	}
	return true
}

func (s *Selection) clearFromCategory() {
	s.CategoryID = nil
	s.clearFromResale()
}

func (s *Selection) clearFromResale() {
	s.ResaleCategory = ""
	s.clearFromWeight()
}

func (s *Selection) clearFromWeight() {
	s.WeightGrams = 0
	s.HasResult = false
}
