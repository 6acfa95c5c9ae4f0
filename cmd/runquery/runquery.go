// Copyright (c) 2026 Google LLC. All rights reserved.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	gobigquery "github.com/googleapis/gobigquery"
)

func main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		<-c
		log.Println("Caught signal, canceling...")
		cancel()
	}()

	// get environment variables
	env := func(k string) string {
		if value := os.Getenv(k); value != "" {
			return value
		}
		log.Fatalf("%v environment variable is not set.", k)
		return ""
	}

	project := env("BIGQUERY_TEST_PROJECT")
	token := env("BIGQUERY_TEST_TOKEN")

	client := gobigquery.NewRestClient(gobigquery.RestClientConfig{
		Token:          token,
		RequestTimeout: 60 * time.Second,
	})
	query := "SELECT word, word_count FROM `bigquery-public-data.samples.shakespeare` WHERE corpus = @corpus LIMIT 5"
	res, _, err := client.Query(ctx, &gobigquery.PostQueryRequest{
		ProjectID: project,
		QueryRequest: gobigquery.QueryRequest{
			Query:         query,
			ParameterMode: "NAMED",
			QueryParameters: []gobigquery.QueryParameter{{
				Name:           "corpus",
				ParameterType:  gobigquery.QueryParameterType{Type: "STRING"},
				ParameterValue: gobigquery.QueryParameterValue{Value: "hamlet"},
			}},
			Timeout: gobigquery.MillisDuration(30 * time.Second),
		},
	})
	if err != nil {
		log.Fatalf("failed to run a query. %v, err: %v", query, err)
	}
	if res.JobComplete == nil || !*res.JobComplete {
		log.Fatalf("query did not complete within the timeout. job: %v", res.JobReference.JobID)
	}
	for _, row := range res.Rows {
		for i, cell := range row.F {
			if i > 0 {
				fmt.Print("\t")
			}
			fmt.Print(cell.V)
		}
		fmt.Println()
	}
	fmt.Printf("Congrats! You have successfully run %v with BigQuery!\n", query)
}
