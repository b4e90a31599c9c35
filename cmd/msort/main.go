package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/sbezverk/msort"
	"github.com/sbezverk/msort/console"
	"github.com/sbezverk/msort/feeder"
	"github.com/sbezverk/msort/feeder/offline_feeder"
	"github.com/sbezverk/msort/server"
	"github.com/sbezverk/msort/store"
)

var (
	file   string
	listen string
)

func init() {
	flag.StringVar(&file, "file", "", "sort every line of the file instead of prompting, one sequence per line")
	flag.StringVar(&listen, "listen", "", "serve the msort.Sorter gRPC service on this address, for example :50051")
}

func main() {
	_ = flag.Set("logtostderr", "true")
	flag.Parse()

	os.Exit(run())
}

func run() int {
	defer glog.Flush()

	stopCh := msort.SetupSignalHandler()

	var err error
	switch {
	case listen != "":
		err = serve(listen, stopCh)
	case file != "":
		err = batch(file, stopCh)
	default:
		history := store.NewStore()
		defer history.Stop()
		err = console.New(os.Stdin, os.Stdout, history).Run(stopCh)
	}
	if err != nil {
		glog.Errorf("%+v", err)
		return 1
	}

	return 0
}

func serve(addr string, stopCh <-chan struct{}) error {
	srv, err := server.New(addr)
	if err != nil {
		return fmt.Errorf("failed to start sorter service on %s with error: %w", addr, err)
	}
	<-stopCh
	glog.Infof("stopping sorter service on %s", srv.Addr())
	srv.Stop()

	return nil
}

func batch(fn string, stopCh <-chan struct{}) error {
	f, err := offline_feeder.New(fn)
	if err != nil {
		return err
	}
	defer f.Stop()

	failed := 0
	for {
		var fd *feeder.Feed
		var ok bool
		select {
		case fd, ok = <-f.GetFeed():
		case <-stopCh:
			return nil
		}
		if !ok {
			break
		}
		if fd.Err != nil {
			glog.Errorf("%+v", fd.Err)
			failed++
			continue
		}
		o := msort.SortBothWays(fd.Values)
		if !o.Verified() {
			failed++
		}
		fmt.Printf("%d: %s -> %s / %s (%s)\n", fd.Line, msort.FormatInts(o.Input),
			msort.FormatInts(o.Ascending), msort.FormatInts(o.Descending), msort.Verdict(o.Verified()))
	}
	if failed != 0 {
		return fmt.Errorf("%d sequence(s) of %s failed", failed, fn)
	}

	return nil
}
