// spacex-dashboard serves the SpaceX launch records dashboard.
//
// Usage:
//
//	spacex-dashboard            same as serve
//	spacex-dashboard serve      HTTP dashboard on LISTEN_ADDR
//	spacex-dashboard tui        terminal dashboard
//	spacex-dashboard summary    print a dataset overview
//	spacex-dashboard snapshot   write a PNG of every site view into SNAPSHOT_DIR
//
// All settings come from the environment or an optional .env file.
package main

import (
	"context"
	"os"

	"spacex-dashboard/utils"
)

var logger = utils.NewLogger()

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
