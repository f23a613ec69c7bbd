package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"secutag/internal/analysis"
	"secutag/internal/exporter"
	"secutag/internal/scorer"
	"secutag/internal/taxonomy"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("secutag-cli", flag.ContinueOnError)
	taxoPath := fs.String("taxonomy", taxonomy.DefaultPath, "分类文件路径 (.xlsx / .csv)")
	sheet := fs.String("sheet", "", "工作表名称，为空时自动识别")
	requirement := fs.String("requirement", "", "待分类的安全需求")
	out := fs.String("out", "", "导出报告路径；为空时打印结果表")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tx, err := taxonomy.NewLoader(taxonomy.Options{Sheet: *sheet}).LoadFile(*taxoPath)
	if err != nil {
		return err
	}

	a, err := analysis.Run(context.Background(), scorer.NewKeywordScorer(), tx, *requirement)
	if err != nil {
		return err
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		if err := exporter.Write(f, a); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close report: %w", err)
		}
		fmt.Fprintf(stdout, "Rapport généré : %s\n", *out)
		return nil
	}

	return printRows(stdout, a)
}

func printRows(w io.Writer, a *analysis.Analysis) error {
	if a.Empty() {
		_, err := fmt.Fprintln(w, a.Message())
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID Tag\tCatégorie\tTag\tNiveau de pertinence\tJustification")
	for _, r := range a.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", r.ID, r.Category, r.Tag, int(r.Level), r.Justification)
	}
	return tw.Flush()
}
