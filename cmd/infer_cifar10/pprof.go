package main

import "os"
import "os/signal"
import "runtime/pprof"
import "syscall"

// -pgo collects a cpu profile into default.pgo until the program is interrupted
func init() {
	for _, arg := range os.Args {
		if arg == "-pgo" || arg == "--pgo" {
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			f, err := os.Create("default.pgo")
			if err != nil {
				println("[pgo]", err.Error())
				return
			}
			pprof.StartCPUProfile(f)
			go func() {
				<-sigChan
				pprof.StopCPUProfile()
				f.Close()
				os.Exit(130)
			}()
			return
		}
	}
}
