package report

import (
	"encoding/json"
	"io"
	"slices"

	"github.com/lacuna-lang/lacuna/pkg/statics"
	"github.com/lacuna-lang/lacuna/pkg/syntax"
)

// Entry is the machine-readable statics of one id. Fields that do not
// apply to the node's sort are omitted.
type Entry struct {
	ID    syntax.ID `json:"id"`
	Form  string    `json:"form"`
	Type  string    `json:"type,omitempty"`
	Mode  string    `json:"mode,omitempty"`
	Error string    `json:"error,omitempty"`
}

// Entries lists the statics of every id, ascending.
func (r *Report) Entries() []Entry {
	ids := make([]syntax.ID, 0, len(r.infos))
	for id := range r.infos {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		info, err := r.infos.Get(id)
		if err != nil {
			continue
		}
		e := Entry{ID: id, Form: syntax.FormName(info.Term())}
		if ty, err := r.infos.FixedType(id); err == nil {
			e.Type = ty.String()
		}
		if mode, err := r.infos.ModeOf(id); err == nil {
			e.Mode = mode.String()
		}
		if infoErr := statics.ErrOf(info); infoErr != nil {
			e.Error = infoErr.Error()
		}
		entries = append(entries, e)
	}
	return entries
}

type jsonReport struct {
	Nodes    int     `json:"nodes"`
	Problems int     `json:"problems"`
	Entries  []Entry `json:"entries"`
}

// WriteJSON emits the whole report as one JSON document: a summary plus
// an entry per id.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Nodes:    len(r.infos),
		Problems: len(r.Diagnostics()),
		Entries:  r.Entries(),
	})
}
