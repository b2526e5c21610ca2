// internal/translation/lifecycle.go
package translation

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Result is the typed outcome of one provider call. A failed call carries
// its error here instead of propagating it to the caller, so a broken
// provider can never block a save.
type Result struct {
	Text string
	Err  error
}

// OK reports whether the call produced a usable translation.
func (r Result) OK() bool {
	return r.Err == nil && r.Text != ""
}

// Translator is the external machine-translation capability.
type Translator interface {
	Translate(ctx context.Context, text string, target Language) Result
}

// Lifecycle backfills missing secondary-language fields right before an
// entity is persisted.
type Lifecycle struct {
	translator Translator
	log        *logrus.Entry
}

func NewLifecycle(translator Translator) *Lifecycle {
	return &Lifecycle{
		translator: translator,
		log:        logrus.WithField("component", "translation_lifecycle"),
	}
}

// Apply fills empty secondary fields from their primary counterparts and
// updates the translation status. It never overwrites an existing secondary
// value, never touches entities marked manual, and an individual field
// failing does not stop the remaining fields or the save. Calling it twice
// with no new primary content is a no-op the second time.
func (l *Lifecycle) Apply(ctx context.Context, e Translatable) {
	if e.TranslationStatus() == StatusManual {
		return
	}

	translated := false
	for _, pair := range e.FieldPairs() {
		if *pair.Primary == "" || *pair.Secondary != "" {
			continue
		}

		res := l.translator.Translate(ctx, *pair.Primary, LanguageEN)
		if res.Err != nil {
			l.log.WithError(res.Err).WithFields(logrus.Fields{
				"kind":  e.Kind(),
				"field": pair.Name,
			}).Warn("auto-translation failed, saving without it")
			continue
		}
		if res.Text == "" {
			continue
		}

		*pair.Secondary = res.Text
		translated = true
	}

	if translated {
		e.SetTranslationStatus(StatusAuto)
	}
}
