package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"MarketAsk/internal/calculator"
	"MarketAsk/internal/model"
	"MarketAsk/internal/refdata"
	"MarketAsk/internal/render"
)

func (d *Dispatcher) financialTerm(lower string) model.Response {
	term, ok := d.ref.FindTerm(lower)
	if !ok {
		return model.Response{Intent: model.IntentFinancialTerms, Text: termNotFoundText}
	}
	return model.Response{
		Intent: model.IntentFinancialTerms,
		Text:   fmt.Sprintf("**%s**: %s", render.TitleCase(term.Term), term.Definition),
	}
}

func (d *Dispatcher) learningResources(lower string) model.Response {
	level := refdata.LevelBeginners
	if strings.Contains(lower, refdata.LevelIntermediate) {
		level = refdata.LevelIntermediate
	} else if strings.Contains(lower, refdata.LevelAdvanced) {
		level = refdata.LevelAdvanced
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**%s Learning Resources:**\n\n", render.TitleCase(level))
	for _, res := range d.ref.Resources(level) {
		fmt.Fprintf(&b, "- %s\n", res)
	}
	return model.Response{Intent: model.IntentLearningResources, Text: b.String()}
}

func (d *Dispatcher) roadmap() model.Response {
	var b strings.Builder
	b.WriteString("**Investment Roadmap:**\n\n")
	for _, step := range d.ref.Roadmap() {
		fmt.Fprintf(&b, "**%s**\n%s\n\n", step.Title, step.Description)
	}
	return model.Response{Intent: model.IntentInvestmentRoadmap, Text: b.String()}
}

func (d *Dispatcher) topCompanies(ctx context.Context, lower string) model.Response {
	var b strings.Builder
	sector, ok := d.ref.FindSector(lower)
	if !ok {
		b.WriteString("**Available Sectors:**\n\n")
		for _, s := range d.ref.Sectors() {
			fmt.Fprintf(&b, "- %s\n", render.TitleCase(s.Name))
		}
		return model.Response{Intent: model.IntentTopCompanies, Text: b.String()}
	}

	fmt.Fprintf(&b, "**Top %s Companies (with latest prices):**\n\n", render.TitleCase(sector.Name))
	for _, ticker := range sector.Tickers {
		l := d.gw.History(ctx, ticker, model.DefaultPeriod)
		if !l.HasHistory() {
			fmt.Fprintf(&b, "- %s: %s\n", ticker, priceUnavailable)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", ticker, render.FormatCurrency(l.History.Last().Close, d.opts.USDToINR))
	}
	return model.Response{Intent: model.IntentTopCompanies, Text: b.String()}
}

func (d *Dispatcher) stockPrice(ctx context.Context, ticker string) model.Response {
	fail := func(format string) model.Response {
		return model.Response{Intent: model.IntentStockPrice, Text: fmt.Sprintf(format, ticker)}
	}

	l := d.gw.Lookup(ctx, ticker, model.DefaultPeriod)
	if !l.HasHistory() || l.Profile == nil {
		return fail(priceFailedFmt)
	}
	change, err := calculator.DailyChange(l.History)
	if err != nil {
		d.log.Warn().Err(err).Str("ticker", ticker).Msg("daily change unavailable")
		if errors.Is(err, model.ErrInsufficientHistory) {
			return fail(changeFailedFmt)
		}
		return fail(priceFailedFmt)
	}

	direction := trendDown
	if change.Absolute > 0 {
		direction = trendUp
	}
	text := fmt.Sprintf("%s Current Price: %s %s\n\nChange: %s (%s)\n\n%s",
		ticker,
		render.FormatCurrency(change.Current, d.opts.USDToINR),
		direction,
		render.FormatUSD(change.Absolute),
		render.FormatPercent(change.Percent),
		render.FormatCompanyInfo(l.Profile))
	return model.Response{Intent: model.IntentStockPrice, Text: text}
}

func (d *Dispatcher) chart(ctx context.Context, ticker string, period model.Period) model.Response {
	l := d.gw.History(ctx, ticker, period)
	if !l.HasHistory() {
		return model.Response{Intent: model.IntentChart, Text: fmt.Sprintf(chartFailedFmt, ticker)}
	}
	return model.Response{
		Intent: model.IntentChart,
		Text:   fmt.Sprintf(chartReadyFmt, period, ticker),
		Chart:  render.LineChart(l.History),
	}
}

func (d *Dispatcher) compare(ctx context.Context, tickers []string) model.Response {
	requested := strings.Join(tickers, ", ")
	var series []model.ChartSeries
	for _, ticker := range tickers {
		l := d.gw.History(ctx, ticker, model.DefaultPeriod)
		if !l.HasHistory() {
			continue
		}
		points, err := calculator.Normalize(l.History)
		if err != nil {
			d.log.Warn().Err(err).Str("ticker", ticker).Msg("dropping series from comparison")
			continue
		}
		series = append(series, render.SeriesOf(ticker, points))
	}
	if len(series) == 0 {
		return model.Response{Intent: model.IntentCompare, Text: fmt.Sprintf(compareFailedFmt, requested)}
	}
	return model.Response{
		Intent: model.IntentCompare,
		Text:   fmt.Sprintf(compareReadyFmt, requested),
		Chart:  render.ComparisonChart(series),
	}
}

func (d *Dispatcher) predict(ctx context.Context, ticker, lower string) model.Response {
	horizon := ParseHorizon(lower, d.opts.DefaultHorizon)

	l := d.gw.History(ctx, ticker, model.DefaultPeriod)
	if !l.HasHistory() {
		return model.Response{Intent: model.IntentPrediction, Text: fmt.Sprintf(predictNoDataFmt, ticker)}
	}

	var (
		pred model.Prediction
		err  error
	)
	if horizon > d.opts.MaxHorizon {
		err = fmt.Errorf("horizon %d above configured maximum %d: %w", horizon, d.opts.MaxHorizon, model.ErrInvalidHorizon)
	} else {
		pred, err = calculator.PredictTrend(l.History, horizon)
	}
	if err != nil || len(pred.Points) == 0 {
		d.log.Warn().Err(err).Str("ticker", ticker).Int("horizon", horizon).Msg("prediction failed")
		return model.Response{Intent: model.IntentPrediction, Text: fmt.Sprintf(predictFailedFmt, ticker)}
	}
	return model.Response{
		Intent: model.IntentPrediction,
		Text:   fmt.Sprintf(predictReadyFmt, horizon, ticker),
		Chart:  render.PredictionChart(l.History, pred),
	}
}
