// Package query derives the task projection the UI renders. It is a pure
// linear scan over the in-memory collection; no indexes at this scale.
package query

import (
	"sort"
	"strings"

	"github.com/taskpad/taskpad/internal/model"
)

type Params struct {
	Search string
	Filter model.FilterStatus
	Sort   model.SortOrder
}

func DefaultParams() Params {
	return Params{
		Filter: model.FilterAll,
		Sort:   model.SortLatest,
	}
}

// Apply returns the subsequence of tasks that passes the status filter and
// the case-insensitive search, ordered by creation time. The input slice is
// never mutated.
func Apply(tasks []model.Task, params Params) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	term := strings.ToLower(strings.TrimSpace(params.Search))
	for _, task := range tasks {
		if !passesFilter(task, params.Filter) {
			continue
		}
		if !matchesSearch(task, term) {
			continue
		}
		out = append(out, task)
	}

	switch params.Sort {
	case model.SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

func passesFilter(task model.Task, filter model.FilterStatus) bool {
	switch filter {
	case model.FilterCompleted:
		return task.Status == model.StatusCompleted
	case model.FilterPending:
		return task.Status == model.StatusPending
	default:
		return true
	}
}

func matchesSearch(task model.Task, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(task.Title), term) {
		return true
	}
	return task.Notes != "" && strings.Contains(strings.ToLower(task.Notes), term)
}
