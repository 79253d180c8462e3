// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be known.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/trade-appraiser/tools/dashgen/rules"
)

// histogramSuffixes are the series a histogram exposes besides its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors. Warnings do not fail.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every Prometheus target of every panel, including
// panels nested in rows.
func Dashboard(d dashboard.Dashboard, known map[string]bool) Result {
	var r Result
	for _, p := range d.Panels {
		if p.Panel != nil {
			checkPanel(&r, p.Panel, known)
		}
		if p.RowPanel != nil {
			for i := range p.RowPanel.Panels {
				checkPanel(&r, &p.RowPanel.Panels[i], known)
			}
		}
	}
	return r
}

// Rules validates the expressions of a PrometheusRule and checks that each
// rule is either a recording or an alerting rule.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var r Result
	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			switch {
			case rule.Record != "" && rule.Alert != "":
				r.errorf("%s/%s: rule sets both record and alert", g.Name, name)
			case name == "":
				r.errorf("%s: rule has neither record nor alert", g.Name)
			}
			for _, msg := range Expr(rule.Expr, known) {
				r.errorf("%s/%s: %s", g.Name, name, msg)
			}
		}
	}
	return r
}

// Expr parses a PromQL expression and returns one message per problem:
// a parse failure or a selected metric missing from known.
func Expr(expr string, known map[string]bool) []string {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return []string{fmt.Sprintf("invalid PromQL %q: %v", expr, err)}
	}

	unknown := map[string]bool{}
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !knownMetric(vs.Name, known) {
			unknown[vs.Name] = true
		}
		return nil
	})

	msgs := make([]string, 0, len(unknown))
	for name := range unknown {
		msgs = append(msgs, fmt.Sprintf("unknown metric %q", name))
	}
	sort.Strings(msgs)
	return msgs
}

func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

func checkPanel(r *Result, p *dashboard.Panel, known map[string]bool) {
	title := "(untitled)"
	if p.Title != nil && *p.Title != "" {
		title = *p.Title
	}

	if len(p.Targets) == 0 {
		r.warnf("panel %q has no targets", title)
		return
	}

	for _, t := range p.Targets {
		q, ok := t.(*prometheus.Dataquery)
		if !ok {
			r.warnf("panel %q has a non-Prometheus target", title)
			continue
		}
		for _, msg := range Expr(q.Expr, known) {
			r.errorf("panel %q: %s", title, msg)
		}
	}
}
