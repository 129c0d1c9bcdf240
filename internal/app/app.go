// Package app wires together all adapters and domain logic.
// It is the layer the CLI and the HTTP API call into: every operation
// here loads a named candidate list from storage, runs the pure domain
// logic over it, and persists whatever the operation rewrote.
package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/corey/termo/internal/adapters/ahocorasick"
	"github.com/corey/termo/internal/adapters/bbolt"
	fsw "github.com/corey/termo/internal/adapters/fsnotify"
	"github.com/corey/termo/internal/adapters/morph"
	"github.com/corey/termo/internal/domain/colloc"
	"github.com/corey/termo/internal/domain/normform"
	"github.com/corey/termo/internal/ports"
)

// App is the top-level container wiring all components together.
type App struct {
	ProjectRoot string
	Paths       *Paths
	Config      Config

	Store   *bbolt.Store
	Lexicon *morph.Lexicon
	Tagger  *morph.Tagger
	Watcher *fsw.Watcher
}

// New builds a fully wired App for the given project root: ensures the
// .termo/ directory, loads the config, opens the bbolt store, and loads
// the lexicon (the configured file, or the embedded starter set).
func New(projectRoot string) (*App, error) {
	paths := NewPaths(projectRoot)
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("ensure project dir: %w", err)
	}

	cfg, err := LoadConfig(paths.Config)
	if err != nil {
		return nil, err
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var lexicon *morph.Lexicon
	if cfg.LexiconPath != "" {
		lexicon, err = morph.LoadFile(cfg.LexiconPath)
	} else {
		lexicon, err = morph.Default()
	}
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("load lexicon: %w", err)
	}

	return &App{
		ProjectRoot: projectRoot,
		Paths:       paths,
		Config:      cfg,
		Store:       store,
		Lexicon:     lexicon,
		Tagger:      morph.NewTagger(lexicon),
	}, nil
}

// Close releases the store and stops the lexicon watcher if running.
// Safe to call multiple times.
func (a *App) Close() error {
	if a.Watcher != nil {
		a.Watcher.Stop()
		a.Watcher = nil
	}
	if a.Store != nil {
		err := a.Store.Close()
		a.Store = nil
		return err
	}
	return nil
}

// WatchLexicon starts monitoring the configured lexicon file and hot-
// reloads it on change. No-op when the config uses the embedded lexicon.
func (a *App) WatchLexicon() error {
	if a.Config.LexiconPath == "" {
		return nil
	}
	w, err := fsw.NewWatcher()
	if err != nil {
		return err
	}
	err = w.Watch(a.Config.LexiconPath, func(path string) {
		fresh, err := morph.LoadFile(path)
		if err != nil {
			log.Printf("lexicon reload failed: %v", err)
			return
		}
		a.Lexicon.Replace(fresh.Entries())
		log.Printf("lexicon reloaded: %d readings", a.Lexicon.Len())
	})
	if err != nil {
		w.Stop()
		return err
	}
	a.Watcher = w
	return nil
}

// loadCorpusLexicon overlays a stored per-corpus lexicon snapshot onto
// the live lexicon, if one exists. Readings imported for a corpus win
// over the base set for the same surface form.
func (a *App) loadCorpusLexicon(corpus string) error {
	entries, err := a.Store.LoadLexicon(corpus)
	if err != nil {
		return err
	}
	for _, e := range entries {
		a.Lexicon.Add(e)
	}
	return nil
}

// DedupResult reports which stored candidates are grammatically
// identical to the query phrase.
type DedupResult struct {
	Matches     []ports.Collocation
	Diagnostics []colloc.Diagnostic
}

// Dedup tags the query phrase and every candidate stored under corpus,
// then runs the batch identity check. Candidates that cannot be compared
// surface as diagnostics, never as aborts.
func (a *App) Dedup(corpus, phrase string) (*DedupResult, error) {
	if err := a.loadCorpusLexicon(corpus); err != nil {
		return nil, err
	}
	stored, err := a.Store.LoadCandidates(corpus)
	if err != nil {
		return nil, err
	}

	queryTokens, err := a.Tagger.TagPhrase(phrase)
	if err != nil {
		return nil, fmt.Errorf("tag query: %w", err)
	}
	query := ports.Words(queryTokens)

	tagged := make([][]ports.TaggedWord, len(stored))
	var diags []colloc.Diagnostic
	for i, c := range stored {
		tokens, err := a.Tagger.TagPhrase(c.Text)
		if err != nil {
			diags = append(diags, colloc.Diagnostic{Op: "dedup", Item: c.Text, Err: err})
			continue
		}
		tagged[i] = ports.Words(tokens)
	}

	matches, batchDiags := colloc.CountIncludes(query, tagged)
	diags = append(diags, batchDiags...)

	result := &DedupResult{Diagnostics: diags}
	for _, m := range matches {
		result.Matches = append(result.Matches, stored[m.Index])
	}
	return result, nil
}

// ResolveResult reports one resolved case-variant cluster.
type ResolveResult struct {
	WinnerID int
	Text     string
	Cluster  []int
}

// Resolve runs the normal-form resolver over the cluster formed by the
// given candidate ids. The winner's surface text is rewritten with the
// head word of the pseudo-normal form and the list is persisted.
func (a *App) Resolve(corpus string, ids ...int) (*ResolveResult, error) {
	if err := a.loadCorpusLexicon(corpus); err != nil {
		return nil, err
	}
	stored, err := a.Store.LoadCandidates(corpus)
	if err != nil {
		return nil, err
	}

	var cluster []ports.Collocation
	var positions []int
	for _, id := range ids {
		c, ok := colloc.FindByID(stored, id)
		if !ok {
			return nil, fmt.Errorf("candidate %d not found in corpus %q", id, corpus)
		}
		cluster = append(cluster, *c)
		for i := range stored {
			if stored[i].ID == id {
				positions = append(positions, i)
				break
			}
		}
	}
	if len(cluster) == 0 {
		return nil, fmt.Errorf("empty cluster")
	}

	result, err := a.resolveCluster(stored, cluster, positions)
	if err != nil {
		return nil, err
	}
	if err := a.Store.SaveCandidates(corpus, stored); err != nil {
		return nil, err
	}
	return result, nil
}

// ResolveAll groups stored candidates into clusters via their linked ids
// and resolves every cluster. Clusters without a resolvable winner are
// reported as diagnostics and left untouched.
func (a *App) ResolveAll(corpus string) ([]ResolveResult, []colloc.Diagnostic, error) {
	if err := a.loadCorpusLexicon(corpus); err != nil {
		return nil, nil, err
	}
	stored, err := a.Store.LoadCandidates(corpus)
	if err != nil {
		return nil, nil, err
	}

	pos := make(map[int]int, len(stored))
	for i, c := range stored {
		pos[c.ID] = i
	}

	var results []ResolveResult
	var diags []colloc.Diagnostic
	seen := make(map[int]bool)
	for _, c := range stored {
		if seen[c.ID] || len(c.LinkedIDs) == 0 {
			continue
		}
		memberIDs := append([]int{c.ID}, c.LinkedIDs...)
		var cluster []ports.Collocation
		var positions []int
		for _, id := range memberIDs {
			i, ok := pos[id]
			if !ok {
				continue // dangling link, Check reports these
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			cluster = append(cluster, stored[i])
			positions = append(positions, i)
		}
		if len(cluster) == 0 {
			continue
		}

		result, err := a.resolveCluster(stored, cluster, positions)
		if err != nil {
			diags = append(diags, colloc.Diagnostic{Op: "resolve", Item: c.Text, Err: err})
			continue
		}
		results = append(results, *result)
	}

	if len(results) > 0 {
		if err := a.Store.SaveCandidates(corpus, stored); err != nil {
			return nil, nil, err
		}
	}
	return results, diags, nil
}

// resolveCluster picks the cluster's canonical candidate, rewrites its
// text with the cluster head word, and writes the rewrite back into
// stored at the winner's position.
func (a *App) resolveCluster(stored, cluster []ports.Collocation, positions []int) (*ResolveResult, error) {
	pseudoNormal := cluster[0].PseudoNormal
	if pseudoNormal == "" {
		return nil, fmt.Errorf("cluster %d has no pseudo-normal form", cluster[0].ID)
	}

	tokens, err := a.Tagger.TagPhrase(pseudoNormal)
	if err != nil {
		return nil, err
	}
	head, err := colloc.MainWord(ports.Words(tokens))
	if err != nil {
		return nil, err
	}
	if head == "" {
		return nil, fmt.Errorf("no head word in %q", pseudoNormal)
	}

	winner, err := normform.Resolve(pseudoNormal, head, cluster)
	if err != nil {
		return nil, err
	}

	rewritten := normform.ReplaceMainWord(cluster[winner], head)
	stored[positions[winner]] = rewritten

	ids := make([]int, len(cluster))
	for i, m := range cluster {
		ids[i] = m.ID
	}
	return &ResolveResult{
		WinnerID: rewritten.ID,
		Text:     rewritten.Text,
		Cluster:  ids,
	}, nil
}

// LinkLonger finds every stored candidate that contains the query phrase
// as a contiguous sub-collocation. When the query itself is stored, its
// linked ids are rewritten to the matches and the list is persisted.
func (a *App) LinkLonger(corpus, phrase string) ([]ports.Collocation, []colloc.Diagnostic, error) {
	if err := a.loadCorpusLexicon(corpus); err != nil {
		return nil, nil, err
	}
	stored, err := a.Store.LoadCandidates(corpus)
	if err != nil {
		return nil, nil, err
	}

	query := ports.NewCollocation(phrase, 0, -1)
	var longer []ports.Collocation
	for _, c := range stored {
		if c.WordCount > query.WordCount {
			longer = append(longer, c)
		}
	}

	matches, diags, err := colloc.LongerTerms(a.Tagger, a.Lexicon, query, longer)
	if err != nil {
		return nil, diags, err
	}

	for i := range stored {
		if stored[i].Text != phrase {
			continue
		}
		ids := make([]int, len(matches))
		for j, m := range matches {
			ids[j] = m.ID
		}
		stored[i].LinkedIDs = ids
		if err := a.Store.SaveCandidates(corpus, stored); err != nil {
			return nil, diags, err
		}
		break
	}
	return matches, diags, nil
}

// Check runs the link-graph consistency report over corpus.
func (a *App) Check(corpus string) (colloc.LinkReport, error) {
	stored, err := a.Store.LoadCandidates(corpus)
	if err != nil {
		return colloc.LinkReport{}, err
	}
	return colloc.CheckLinks(stored), nil
}

// ScanHit pairs a stored candidate with its mention count in scanned
// text.
type ScanHit struct {
	Candidate ports.Collocation
	Count     int
}

// Scan counts occurrences of every stored candidate's surface form in
// text, case-folded, nested terms included. With update set, the counts
// are added to the stored frequencies and the list is persisted.
func (a *App) Scan(corpus, text string, update bool) ([]ScanHit, error) {
	stored, err := a.Store.LoadCandidates(corpus)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, nil
	}

	surfaces := make([]string, len(stored))
	for i, c := range stored {
		surfaces[i] = strings.ToLower(c.Text)
	}
	counts := ahocorasick.NewScanner(surfaces).Counts(strings.ToLower(text))

	var hits []ScanHit
	for i, n := range counts {
		if n == 0 {
			continue
		}
		if update {
			stored[i].Frequency += n
		}
		hits = append(hits, ScanHit{Candidate: stored[i], Count: n})
	}
	if update && len(hits) > 0 {
		if err := a.Store.SaveCandidates(corpus, stored); err != nil {
			return nil, err
		}
	}
	return hits, nil
}

// ImportLexicon parses the file at path (TSV or compiled) and stores the
// readings as the corpus lexicon snapshot. Returns the reading count.
func (a *App) ImportLexicon(corpus, path string) (int, error) {
	lex, err := morph.LoadFile(path)
	if err != nil {
		return 0, err
	}
	entries := lex.Entries()
	if err := a.Store.SaveLexicon(corpus, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}
