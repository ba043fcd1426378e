package storefront

import (
	"context"
	"testing"

	"freshmart/internal/catalog"

	"github.com/stretchr/testify/require"
)

func newFixtureCatalog(t testing.TB) *catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(context.Background(), catalog.FixtureSource{}, "https://cdn.example.com/img")
	require.NoError(t, err)
	return svc
}

type countingRecorder struct {
	commands map[string]int
	failures int
	added    int
	active   int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{commands: map[string]int{}}
}

func (r *countingRecorder) CommandDispatched(commandType string, err error) {
	r.commands[commandType]++
	if err != nil {
		r.failures++
	}
}

func (r *countingRecorder) LineAdded()              { r.added++ }
func (r *countingRecorder) SetActiveSessions(n int) { r.active = n }

func productIDs(v View) []string {
	ids := make([]string, 0, len(v.Products))
	for _, p := range v.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

func lineIDs(v View) []string {
	ids := make([]string, 0, len(v.Cart.Lines))
	for _, l := range v.Cart.Lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}
