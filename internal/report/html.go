package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"benchgate/internal/benchmark"
)

type htmlBenchmark struct {
	Name   string
	Mean   string
	Median string
	StdDev string
}

type htmlCategory struct {
	Title      string
	Benchmarks []htmlBenchmark
}

type htmlData struct {
	GeneratedAt     string
	TotalBenchmarks int
	TotalCategories int
	FastestTime     string
	SlowestTime     string
	Categories      []htmlCategory
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Benchmark Results</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; background: #f5f5f5; padding: 20px; }
        .container { max-width: 1200px; margin: 0 auto; background: white; padding: 30px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #2c3e50; margin-bottom: 10px; font-size: 2em; }
        .timestamp { color: #7f8c8d; margin-bottom: 30px; font-size: 0.9em; }
        .summary { background: #ecf0f1; padding: 20px; border-radius: 6px; margin-bottom: 30px; }
        .summary h2 { color: #34495e; margin-bottom: 15px; font-size: 1.3em; }
        .stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 15px; }
        .stat { background: white; padding: 15px; border-radius: 4px; border-left: 4px solid #3498db; }
        .stat-label { color: #7f8c8d; font-size: 0.85em; text-transform: uppercase; letter-spacing: 0.5px; }
        .stat-value { color: #2c3e50; font-size: 1.8em; font-weight: bold; margin-top: 5px; }
        .category { margin-bottom: 40px; }
        .category h2 { color: #2c3e50; margin-bottom: 20px; padding-bottom: 10px; border-bottom: 2px solid #3498db; font-size: 1.5em; }
        .benchmark-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 20px; }
        .benchmark-card { background: #f8f9fa; padding: 20px; border-radius: 6px; border: 1px solid #e1e4e8; }
        .benchmark-name { font-weight: 600; color: #2c3e50; margin-bottom: 15px; font-size: 1.1em; word-break: break-word; }
        .metric { display: flex; justify-content: space-between; align-items: center; padding: 8px; background: white; border-radius: 4px; margin-bottom: 8px; }
        .metric-label { color: #7f8c8d; font-size: 0.9em; }
        .metric-value { color: #2c3e50; font-weight: 600; font-family: 'Courier New', monospace; }
        .footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #e1e4e8; text-align: center; color: #7f8c8d; font-size: 0.9em; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Benchmark Results</h1>
        <div class="timestamp">Generated: {{.GeneratedAt}}</div>

        <div class="summary">
            <h2>Summary</h2>
            <div class="stats">
                <div class="stat">
                    <div class="stat-label">Total Benchmarks</div>
                    <div class="stat-value">{{.TotalBenchmarks}}</div>
                </div>
                <div class="stat">
                    <div class="stat-label">Categories</div>
                    <div class="stat-value">{{.TotalCategories}}</div>
                </div>
                <div class="stat">
                    <div class="stat-label">Fastest</div>
                    <div class="stat-value">{{.FastestTime}}</div>
                </div>
                <div class="stat">
                    <div class="stat-label">Slowest</div>
                    <div class="stat-value">{{.SlowestTime}}</div>
                </div>
            </div>
        </div>
{{range .Categories}}
        <div class="category">
            <h2>{{.Title}}</h2>
            <div class="benchmark-grid">
{{range .Benchmarks}}
                <div class="benchmark-card">
                    <div class="benchmark-name">{{.Name}}</div>
                    <div class="metric"><span class="metric-label">Mean</span><span class="metric-value">{{.Mean}}</span></div>
                    <div class="metric"><span class="metric-label">Median</span><span class="metric-value">{{.Median}}</span></div>
                    <div class="metric"><span class="metric-label">Std Dev</span><span class="metric-value">{{.StdDev}}</span></div>
                </div>
{{end}}
            </div>
        </div>
{{end}}
        <div class="footer">
            <p>Generated by benchgate</p>
        </div>
    </div>
</body>
</html>
`

// RenderHTML produces the standalone HTML report. Benchmarks are grouped by
// category with a summary panel listing the global fastest and slowest mean.
func RenderHTML(results map[string]benchmark.Result, now time.Time) (string, error) {
	data := htmlData{
		GeneratedAt:     now.Format("2006-01-02 15:04:05"),
		TotalBenchmarks: len(results),
		FastestTime:     "N/A",
		SlowestTime:     "N/A",
	}

	first := true
	var fastest, slowest float64
	for _, r := range results {
		if first || r.Mean < fastest {
			fastest = r.Mean
		}
		if first || r.Mean > slowest {
			slowest = r.Mean
		}
		first = false
	}
	if !first {
		data.FastestTime = FormatTime(fastest)
		data.SlowestTime = FormatTime(slowest)
	}

	categories := categorize(results)
	data.TotalCategories = len(categories)
	for _, cat := range categories {
		view := htmlCategory{Title: categoryTitle(cat.Name)}
		for _, b := range cat.Benchmarks {
			view.Benchmarks = append(view.Benchmarks, htmlBenchmark{
				Name:   displayName(b.Name),
				Mean:   FormatTime(b.Mean),
				Median: FormatTime(b.Median),
				StdDev: FormatTime(b.StdDev),
			})
		}
		data.Categories = append(data.Categories, view)
	}

	t, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return sb.String(), nil
}
