package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/wheelibin/dingz/internal/config"
	"github.com/wheelibin/dingz/internal/dingz"
	"github.com/wheelibin/dingz/internal/poller"
	"github.com/wheelibin/dingz/internal/repos"
	"gopkg.in/natefinch/lumberjack.v2"
)

var cfg *config.Config

func main() {

	logger := log.NewWithOptions(&lumberjack.Logger{
		Filename: "logs/dingzd.log",
		MaxAge:   3,
	}, log.Options{
		Level:      log.InfoLevel,
		TimeFormat: "2006/01/02 15:04:05",
	})
	logger.Info("dingzd starting")

	// read the config file
	cfg = config.ReadConfig()

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		logger.Fatal("error opening database", "err", err)
	}
	defer db.Close()

	// create/wire up services
	repo, err := repos.NewSensorRepo(logger, db)
	if err != nil {
		logger.Fatal("error initialising sensor repo", "err", err)
	}
	api := dingz.NewAPIService(logger, &http.Client{}, cfg.Host)
	ps := poller.NewPollerService(logger, api, repo, time.Duration(cfg.PollIntervalSeconds)*time.Second)

	// serve the readings event stream
	mux := http.NewServeMux()
	mux.HandleFunc("/events", ps.ServeEvents)
	go func() {
		if err := http.ListenAndServe(cfg.EventsAddr, mux); err != nil {
			logger.Error("event stream server stopped", "err", err)
		}
	}()

	stopChannel := make(chan bool, 1)
	quitChannel := make(chan os.Signal, 1)

	// start the polling loop
	go ps.Run(stopChannel)

	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	<-quitChannel

	// cleanup before exit
	stopChannel <- true
	fmt.Println("dingzd is closing")
}
