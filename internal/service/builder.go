package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/nsmeele/magistra/internal/models"
	"github.com/nsmeele/magistra/internal/repository"
)

// Build assembles the initial session state for one or more lists. Mixed
// selections must share a single language pair. Each question gets its
// direction at build time; the full queue is shuffled before play starts.
func (q *QuizS) Build(ctx context.Context, listIDs []int64, direction models.Direction) (*models.SessionState, error) {
	if len(listIDs) == 0 {
		return nil, ErrEmptySelection
	}

	switch direction {
	case models.DirectionForward, models.DirectionReverse, models.DirectionRandom:
	default:
		return nil, fmt.Errorf("unknown quiz direction %q", direction)
	}

	listIDs = dedupe(listIDs)

	var (
		sourceLang string
		targetLang string
		listNames  []string
		questions  []models.Question
	)

	for i, listID := range listIDs {
		list, err := q.lists.ListByID(ctx, listID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &ListNotFoundError{ListID: listID}
			}
			return nil, err
		}

		if i == 0 {
			sourceLang = list.SourceLanguage
			targetLang = list.TargetLanguage
		} else if list.SourceLanguage != sourceLang || list.TargetLanguage != targetLang {
			return nil, &LanguageMismatchError{
				ExpectedSource: sourceLang,
				ExpectedTarget: targetLang,
				ListName:       list.Name,
				Source:         list.SourceLanguage,
				Target:         list.TargetLanguage,
			}
		}

		entries, err := q.lists.EntriesByList(ctx, listID)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			questions = append(questions, models.Question{
				EntryID:   entry.ID,
				Direction: questionDirection(direction),
			})
		}
		if len(entries) > 0 {
			listNames = append(listNames, list.Name)
		}
	}

	if len(questions) == 0 {
		return nil, ErrEmptyResult
	}

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return &models.SessionState{
		ID:             uuid.New(),
		ListIDs:        listIDs,
		ListNames:      listNames,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Direction:      direction,
		Questions:      questions,
		Index:          0,
		Score:          0,
		Total:          len(questions),
		Status:         models.StatusInProgress,
		StartedAt:      time.Now().UTC(),
	}, nil
}

// dedupe drops repeated list ids, keeping first-mention order. A selection
// like "1,1" would otherwise double every question and collide on the
// session-to-list link rows.
func dedupe(listIDs []int64) []int64 {
	seen := make(map[int64]struct{}, len(listIDs))
	unique := make([]int64, 0, len(listIDs))
	for _, id := range listIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// questionDirection resolves the policy for a single question. Random rolls
// a fresh coin per entry, not per session.
func questionDirection(policy models.Direction) models.Direction {
	if policy != models.DirectionRandom {
		return policy
	}
	if rand.Intn(2) == 0 {
		return models.DirectionForward
	}
	return models.DirectionReverse
}
