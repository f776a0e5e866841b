package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/GoArmGo/JobBoard/internal/adapter/jobboard"
	"github.com/GoArmGo/JobBoard/internal/domain"
	"github.com/GoArmGo/JobBoard/internal/listing"
)

// jobctl — терминальный клиент доски вакансий: забирает публичную выдачу
// и фильтрует ее локально, так же как это делает веб-клиент.
func main() {
	addr := flag.String("addr", "http://localhost:8080", "адрес API")
	search := flag.String("search", "", "поиск по title/company/description")
	location := flag.String("location", "", "подстрока в location")
	mode := flag.String("mode", "", "формат работы: Onsite, Remote или Hybrid")
	minPrice := flag.String("min", "", "минимальный бюджет")
	maxPrice := flag.String("max", "", "максимальный бюджет")
	flag.Parse()

	criteria := listing.Criteria{
		Search:   *search,
		Location: *location,
		WorkMode: domain.WorkMode(*mode),
	}
	if *mode != "" && !criteria.WorkMode.Valid() {
		fmt.Fprintf(os.Stderr, "недопустимый формат работы: %s\n", *mode)
		os.Exit(1)
	}
	var err error
	if criteria.MinPrice, err = parsePrice(*minPrice); err != nil {
		fmt.Fprintf(os.Stderr, "некорректный -min: %v\n", err)
		os.Exit(1)
	}
	if criteria.MaxPrice, err = parsePrice(*maxPrice); err != nil {
		fmt.Fprintf(os.Stderr, "некорректный -max: %v\n", err)
		os.Exit(1)
	}

	client := jobboard.NewAPIClient(*addr)
	jobs, err := client.PublicJobs(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "не удалось получить вакансии: %v\n", err)
		os.Exit(1)
	}

	filtered := criteria.Apply(jobs)
	printJobs(filtered, len(jobs))
}

func parsePrice(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func printJobs(jobs []domain.Job, total int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tCOMPANY\tLOCATION\tMODE\tPRICE\tTECH")
	for _, job := range jobs {
		price := "-"
		if job.Price != nil {
			price = strconv.FormatFloat(*job.Price, 'f', -1, 64)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			job.Title, job.Company, job.Location, job.WorkMode, price,
			strings.Join(job.Technologies, ","),
		)
	}
	w.Flush()
	fmt.Printf("%d of %d jobs\n", len(jobs), total)
}
