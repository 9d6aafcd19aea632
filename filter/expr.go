package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language.
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler.
type ExprCompilerOption func(*exprCompiler)

// WithCustomFunctions adds helper functions to the expression
// environment on top of the built-in ones.
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a compiler for the expr language. Compiled
// programs validate against the helper environment and must produce a
// boolean.
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: helperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type exprCompiler struct {
	helperFuncs map[string]any
}

func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Item properties are injected at evaluation time, so undefined
	// variables must pass compilation.
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &exprFilter{
		expression: expression,
		program:    program,
	}, nil
}

func (f *exprFilter) Evaluate(item Item) (bool, error) {
	result, err := expr.Run(f.program, runtimeEnvironment(item))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Title:      item.Title,
			Err:        err,
		}
	}

	// AsBool at compile time guarantees a boolean result.
	return result.(bool), nil
}

func (f *exprFilter) Expression() string {
	return f.expression
}

// helperFunctions builds the static environment used to validate
// expressions at compile time.
func helperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// runtimeEnvironment builds the evaluation environment for one item.
func runtimeEnvironment(item Item) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	env["Item"] = item
	env["hasGenre"] = hasGenreFunc(item.GenreIDs)
	env["released"] = releasedFunc(item.ReleaseDate)

	// Direct item properties for convenience
	env["MediaType"] = string(item.MediaType)
	env["Title"] = item.Title
	env["OriginalTitle"] = item.OriginalTitle
	env["Overview"] = item.Overview
	env["Language"] = item.Language
	env["ReleaseDate"] = item.ReleaseDate
	env["Year"] = yearOf(item.ReleaseDate)
	env["Adult"] = item.Adult
	env["Popularity"] = item.Popularity
	env["VoteAverage"] = item.VoteAverage
	env["VoteCount"] = item.VoteCount
	env["GenreIDs"] = item.GenreIDs

	return env
}

func hasGenreFunc(genreIDs []int64) func(int) bool {
	return func(id int) bool {
		return slices.Contains(genreIDs, int64(id))
	}
}

// yearOf keeps undated items out of year comparisons. The zero time
// would otherwise report year 1.
func yearOf(t time.Time) int {
	if t.IsZero() {
		return 0
	}
	return t.Year()
}

func releasedFunc(releaseDate time.Time) func() bool {
	return func() bool {
		return !releaseDate.IsZero() && releaseDate.Before(time.Now())
	}
}
