package service

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
)

// WordList is a sorted, lowercased set of known bad passwords. A nil list contains nothing.
type WordList struct {
	words []string
}

func NewWordList(words []string) *WordList {
	values := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		values = append(values, w)
	}

	sorty.SortSlice(values)
	return &WordList{words: dedup(values)}
}

// LoadWordList reads one word per line. Blank lines and lines starting with # are skipped.
func LoadWordList(fileName string) (*WordList, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("error opening word list: %w", err)
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing word list")
		}
	}(file)

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}

	list := NewWordList(words)
	log.Debug().Msgf("loaded %d words from %s", list.Len(), fileName)
	return list, nil
}

func (w *WordList) Contains(word string) bool {
	if w == nil || len(w.words) == 0 {
		return false
	}
	i := sort.SearchStrings(w.words, word)
	return i < len(w.words) && w.words[i] == word
}

func (w *WordList) Len() int {
	if w == nil {
		return 0
	}
	return len(w.words)
}

func dedup(sorted []string) []string {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
