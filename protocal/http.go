package protocal

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"golang-tictactoe/configs"
	httpAdapter "golang-tictactoe/internal/adapters/input/http"
	lineAdapter "golang-tictactoe/internal/adapters/output/line"
	"golang-tictactoe/internal/adapters/output/memory"
	"golang-tictactoe/internal/adapters/output/postgres"
	"golang-tictactoe/internal/application"
	"golang-tictactoe/internal/ports/output"
	"golang-tictactoe/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultHistoryLimit = 20

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("Cannot load .env: %v", err)
	}
	configs.InitViper("./configs", cfg.ENV)
	if configs.GetViper().App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.Info(configs.GetViper().Env)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	// Output adapters
	records, closeRecords, err := newGameRecordRepository(configs.GetViper().Postgres)
	if err != nil {
		return err
	}
	game := configs.GetViper().Game
	historyLimit := game.HistoryLimit
	if historyLimit == 0 {
		historyLimit = defaultHistoryLimit
	}
	store := memory.NewMemorySessionStore(historyLimit)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			logrus.Println("Gracefull shut down ...")
			closeRecords()
			if err := app.Shutdown(); err != nil {
				logrus.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Application services (use cases)
	commandSrv := application.NewCommandService(store, records, game.Trigger, time.Duration(game.RestartCooldown)*time.Second)
	recordSrv := application.NewGameRecordService(records)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(commandSrv, recordSrv)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	slack := app.Group("/slack")
	{
		slack.Get("/command", hdl.SlashCommandPing)
		slack.Post("/command", hdl.SlashCommand)
	}

	api := app.Group("/v1/api")
	{
		api.Get("/records", hdl.GetRecords)
		api.Get("/channels/:channel/history", hdl.GetHistory)
	}

	// LINE group play, only when credentials are configured
	lineCfg := configs.GetViper().Line
	if lineCfg.Enabled() {
		lineClient, err := lineAdapter.NewLineClientAdapter(lineCfg.ChannelToken)
		if err != nil {
			logrus.Fatalf("Failed to create LINE client: %v", err)
		}
		lineWebhookSrv := application.NewLineWebhookService(lineClient, commandSrv, commandSrv.Trigger())
		lineWebhookHdl := httpAdapter.NewLineWebhookHandler(lineWebhookSrv, lineCfg.ChannelSecret)

		webhook := app.Group("/webhook")
		{
			webhook.Post("/line", lineWebhookHdl.HandleWebhook)
		}
	} else {
		logrus.Info("LINE credentials not set, webhook disabled")
	}

	logrus.Infof("Listening on port %s, trigger %s", configs.GetViper().App.Port, commandSrv.Trigger())
	return app.Listen(":" + configs.GetViper().App.Port)
}

// newGameRecordRepository picks postgres when a host is configured and the
// in-memory archive otherwise. The returned func releases the connection.
func newGameRecordRepository(cfg configs.Postgres) (output.GameRecordRepository, func(), error) {
	if cfg.Host == "" {
		logrus.Info("Postgres host not set, game records kept in memory")
		return memory.NewGameRecordRepository(), func() {}, nil
	}
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.DbName,
		cfg.SSLMode,
	)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewGameRecordRepository(dbConGorm.Postgres), func() {
		gorm.DisconnectPostgres(dbConGorm.Postgres)
	}, nil
}
