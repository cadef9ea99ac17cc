package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/isday/compound-calculator/internal/calculation"
	"github.com/isday/compound-calculator/internal/config"
	"github.com/isday/compound-calculator/pkg/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_crossover <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Find the minimum projection length across scenarios
	minLen := -1
	for _, s := range res.Scenarios {
		if minLen == -1 || len(s.Result.Rows) < minLen {
			minLen = len(s.Result.Rows)
		}
	}

	// Header
	header := "Period"
	for i := range res.Scenarios {
		header += fmt.Sprintf(",S%d_Amount,S%d_Income,S%d_Rate", i+1, i+1, i+1)
	}
	fmt.Println(header)

	// Iterate periods and print each scenario's state
	for idx := 0; idx < minLen; idx++ {
		row := fmt.Sprintf("%d", idx+1)
		for sidx := range res.Scenarios {
			r := res.Scenarios[sidx].Result.Rows[idx]
			row += fmt.Sprintf(",%s,%s,%.4f", fixed(r.CumulativeAmount), fixed(r.CumulativeIncome), r.IncomeRatePercent)
		}
		fmt.Println(row)
	}

	// If at least two scenarios, show the running gap between the first two
	if len(res.Scenarios) >= 2 {
		a := res.Scenarios[0].Result
		b := res.Scenarios[1].Result
		for i := 0; i < len(a.Rows) && i < len(b.Rows); i++ {
			fmt.Printf("Period %d: A=%s B=%s diff=%s\n", i+1, fixed(a.Rows[i].CumulativeAmount),
				fixed(b.Rows[i].CumulativeAmount), fixed(a.Rows[i].CumulativeAmount-b.Rows[i].CumulativeAmount))
		}
		x, err := calc.CalculateCrossover(a, b)
		fmt.Printf("\nCrossover: %+v, err=%v\n", x, err)
	}
}

func fixed(v float64) string {
	m, ok := decimal.FromFloat(v)
	if !ok {
		return fmt.Sprint(v)
	}
	return m.Round().String()
}
