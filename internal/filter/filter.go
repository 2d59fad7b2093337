// Package filter selects videos with expr-lang expressions such as
//
//	Video.ViewCount > 100 && hasTag("music")
//	daysSince(Video.UploadTime) < 30 && contains(Video.Title, "live")
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/go-viddler/viddler"
)

// Filter represents a compiled video filter.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression. The expression must yield a bool.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnv(&viddler.Video{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expr
}

// Evaluate evaluates the filter against a video.
func (f *Filter) Evaluate(v *viddler.Video) (bool, error) {
	out, err := expr.Run(f.program, newEnv(v))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter %q: %w", f.expr, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the videos matching the filter, in order.
func (f *Filter) Apply(videos []*viddler.Video) ([]*viddler.Video, error) {
	var out []*viddler.Video
	for _, v := range videos {
		ok, err := f.Evaluate(v)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// newEnv builds the evaluation environment for v: the video itself and the
// helper functions.
func newEnv(v *viddler.Video) map[string]interface{} {
	return map[string]interface{}{
		"Video": *v,

		// Tag helpers
		"hasTag": func(tag string) bool {
			for _, t := range v.Tags {
				if strings.EqualFold(t, tag) {
					return true
				}
			}
			return false
		},

		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"lower": strings.ToLower,

		"now": time.Now,
	}
}
