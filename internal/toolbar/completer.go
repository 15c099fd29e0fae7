package toolbar

import (
	"sort"

	"github.com/diamondburned/cchat"
	"github.com/diamondburned/cchat/text"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const MaxCompletion = 15

// Prefix starts an action command in the message input.
const Prefix = '/'

// Complete completes "/name" action commands for the word at index i.
func (acts Actions) Complete(words []string, i int64) []cchat.CompletionEntry {
	if i < 0 || i >= int64(len(words)) {
		return nil
	}

	var word = words[i]
	// Word should have at least a character for the char check.
	if len(word) < 1 || word[0] != Prefix {
		return nil
	}

	var (
		entries   []cchat.CompletionEntry
		distances map[string]int
	)

	for _, act := range acts {
		rank := rankFunc(word[1:], act.Name)
		if rank == -1 {
			continue
		}

		raw := string(Prefix) + act.Name

		ensureEntriesMade(&entries)
		ensureDistancesMade(&distances)

		entries = append(entries, cchat.CompletionEntry{
			Raw:       raw,
			Text:      text.Plain(act.Name),
			Secondary: text.Plain(act.Desc),
		})
		distances[raw] = rank

		if len(entries) >= MaxCompletion {
			break
		}
	}

	sortDistances(entries, distances)
	return entries
}

// rankFunc is the default rank function to use.
func rankFunc(source, target string) int {
	return fuzzy.RankMatchNormalizedFold(source, target)
}

func ensureEntriesMade(entries *[]cchat.CompletionEntry) {
	if *entries == nil {
		*entries = make([]cchat.CompletionEntry, 0, MaxCompletion)
	}
}

func ensureDistancesMade(distances *map[string]int) {
	if *distances == nil {
		*distances = make(map[string]int, MaxCompletion)
	}
}

// sortDistances sorts according to the given Levenshtein distances from the Raw
// string of the entries from most accurate to least accurate.
func sortDistances(entries []cchat.CompletionEntry, distances map[string]int) {
	if len(entries) == 0 {
		return
	}
	// The lower the distance, the more accurate.
	sort.SliceStable(entries, func(i, j int) bool {
		return distances[entries[i].Raw] < distances[entries[j].Raw]
	})
}
