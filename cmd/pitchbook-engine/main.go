package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/quantfeed/pitchbook/bats"
	"github.com/quantfeed/pitchbook/config"
	"github.com/quantfeed/pitchbook/services/depth_service"
	"github.com/quantfeed/pitchbook/workers/daemons"
	"github.com/quantfeed/pitchbook/workers/engines"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if len(os.Args) < 2 {
		fmt.Println("usage: pitchbook-engine <feed-file>")
		os.Exit(2)
	}

	feed, err := os.Open(os.Args[1])
	if err != nil {
		config.Logger.Fatalf("open feed: %v", err)
	}
	defer feed.Close()

	worker := engines.NewMatchingWorker()

	cronJob := daemons.NewCronJob(worker)
	cronJob.Start()

	var records, decodeErrors, routeErrors uint64

	scanner := bufio.NewScanner(feed)
	for scanner.Scan() {
		record := strings.TrimRight(scanner.Text(), "\r")
		if record == "" {
			continue
		}
		records++

		msg, err := bats.Parse(record)
		if err != nil {
			decodeErrors++
			config.Logger.Errorf("[pitchbook.feed] record %d: %v", records, err)
			continue
		}

		if err := worker.Process(msg); err != nil {
			routeErrors++
			config.Logger.Errorf("[pitchbook.feed] record %d: %v", records, err)
		}
	}
	if err := scanner.Err(); err != nil {
		config.Logger.Fatalf("read feed: %v", err)
	}

	worker.Flush()
	cronJob.Stop()

	config.Logger.Infof("[pitchbook.feed] %d records, %d decode errors, %d routing errors",
		records, decodeErrors, routeErrors)
	worker.LogStats()

	for _, symbol := range worker.Symbols() {
		depth := depth_service.Fetch(worker, symbol, config.App.DepthLimit)
		snapshot, err := json.Marshal(depth.ToJSON())
		if err != nil {
			config.Logger.Errorf("[pitchbook.feed] depth snapshot %s: %v", symbol, err)
			continue
		}
		config.Logger.Infof("[pitchbook.feed] %s depth %s", symbol, snapshot)
	}

	worker.Stop()
}
