package state

import (
	"time"

	"github.com/samber/lo"
)

// nowFn stamps local mirror merges.
var nowFn = time.Now

func removeByID[E any](items []E, id string, idOf func(E) string) []E {
	return lo.Filter(items, func(e E, _ int) bool { return idOf(e) != id })
}
