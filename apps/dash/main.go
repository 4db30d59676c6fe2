package main

import (
	"log"
	"net/http"
	"os"

	"github.com/dhamakuldeep-lab/sukhverse-core/apps/dash/echo"
	"github.com/dhamakuldeep-lab/sukhverse-core/core"
	"github.com/dhamakuldeep-lab/sukhverse-core/core/session"
	"github.com/dhamakuldeep-lab/sukhverse-core/services/gateway"
	"github.com/dhamakuldeep-lab/sukhverse-core/services/logger"
	"github.com/dhamakuldeep-lab/sukhverse-core/storage/token"
)

func main() {
	std := log.New(os.Stdout, "DASH : ", log.LstdFlags|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(std, err)

	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	storage, err := token.NewFileStorage(conf.TokenPath)
	errAndDie(std, err)

	// the gateway reads the token through the store once it exists
	var store *session.Store
	// no client-side timeout; a hung backend hangs the issuing view only
	facade := gateway.New(conf, &http.Client{}, func() string {
		if store == nil {
			return ""
		}
		return store.Token()
	})

	store = session.NewStore(facade.Auth, storage, logger)
	errAndDie(std, store.Initialize())

	app := echodash.NewServer(&echodash.Options{
		Addr:    conf.Server.Addr,
		Debug:   conf.Debug,
		Session: store,
		Gateway: facade,
		Logger:  logger,
	})
	logger.Info("starting dashboard on " + conf.Server.Addr)
	app.Start()
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
