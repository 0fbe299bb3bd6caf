package main

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/glebarez/sqlite"
	"github.com/llpevents/website/cmd/website/internal/api"
	"github.com/llpevents/website/cmd/website/internal/configuration"
	"github.com/llpevents/website/cmd/website/internal/home"
	"github.com/llpevents/website/cmd/website/internal/imageproxy"
	"github.com/llpevents/website/cmd/website/internal/lineup"
	"github.com/llpevents/website/cmd/website/internal/mailerapi"
	"github.com/llpevents/website/cmd/website/internal/photoapi"
	"github.com/llpevents/website/pkg/imaging"
	"github.com/llpevents/website/pkg/services"
	"github.com/llpevents/website/pkg/storage"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"

	"github.com/aws/aws-sdk-go-v2/aws"
)

var (
	Version string = "development"
	appName string = "llpevents-website"

	//go:embed app
	appFS embed.FS

	//go:embed sql-migrations
	sqlMigrationsFs embed.FS

	config configuration.Config

	/* Services */
	albumService      services.AlbumServicer
	contactService    services.ContactServicer
	db                *sqlz.DB
	lineupService     services.LineupServicer
	mailService       services.MailServicer
	metadataService   services.MetadataServicer
	photoService      services.PhotoServicer
	renderer          rendering.TemplateRenderer
	subscriberService services.SubscriberServicer
	turnstileService  services.TurnstileVerifier

	/* Controllers */
	homeController       home.HomeHandlers
	imageProxyController imageproxy.ImageProxyHandlers
	lineupController     lineup.LineupHandlers
	mailerController     mailerapi.MailerHandlers
	photosController     photoapi.PhotosHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("environment", config.Environment),
		slog.String("awsEndpointUrl", config.AwsEndpointUrl),
		slog.String("awsRegion", config.AwsRegion),
		slog.String("bucket", config.AwsBucket),
	)

	slog.Debug("setting up...")

	/*
	 * Setup services
	 */
	binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	if db, err = sqlz.Connect("sqlite", config.DSN); err != nil {
		panic(err)
	}

	migrateDatabase()

	var awsCfg aws.Config

	retrier.Retry(func() error {
		if awsCfg, err = loadAwsConfig(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if config.AwsEndpointUrl != "" {
			o.BaseEndpoint = aws.String(config.AwsEndpointUrl)
			o.UsePathStyle = true
		}
	})

	blobStorage := storage.NewBlobStorage(storage.BlobStorageConfig{
		Bucket:        config.AwsBucket,
		Client:        s3Client,
		PublicBaseURL: config.PublicBaseURL,
	})

	urls := imaging.URLBuilder{
		ProxyTemplate: config.ImageProxyTemplate,
		Production:    config.IsProduction(),
	}

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	metadataService = services.NewMetadataService(services.MetadataServiceConfig{
		MetadataPrefix: config.MetadataPrefix,
		Storage:        blobStorage,
	})

	albumService = services.NewAlbumService(services.AlbumServiceConfig{
		MaxListWorkers:  config.MaxListWorkers,
		MetadataService: metadataService,
		Storage:         blobStorage,
		URLs:            urls,
	})

	photoService = services.NewPhotoService(services.PhotoServiceConfig{
		Storage: blobStorage,
		URLs:    urls,
	})

	mailService = services.NewMailService(services.MailServiceConfig{
		ApiKey:         config.EmailApiKey,
		ContactToEmail: config.ContactToEmail,
		FromEmail:      config.FromEmail,
		FromName:       config.FromName,
	})

	turnstileService = services.NewTurnstileService(services.TurnstileServiceConfig{
		SecretKey: config.TurnstileSecretKey,
	})

	subscriberService = services.NewSubscriberService(services.SubscriberServiceConfig{
		DB: db,
	})

	contactService = services.NewContactService(services.ContactServiceConfig{
		DB: db,
	})

	lineupService = services.NewLineupService(services.LineupServiceConfig{
		CSVPath: config.LineupCSVPath,
	})

	/*
	 * Setup controllers
	 */
	homeController = home.NewHomeController(home.HomeControllerConfig{
		Config:   &config,
		Renderer: renderer,
	})

	photosController = photoapi.NewPhotosController(photoapi.PhotosControllerConfig{
		AlbumService: albumService,
		PhotoService: photoService,
	})

	mailerController = mailerapi.NewMailerController(mailerapi.MailerControllerConfig{
		ContactService:    contactService,
		MailService:       mailService,
		SubscriberService: subscriberService,
		Turnstile:         turnstileService,
		EmailApiKey:       config.EmailApiKey,
		TurnstileSecret:   config.TurnstileSecretKey,
	})

	lineupController = lineup.NewLineupController(lineup.LineupControllerConfig{
		LineupService: lineupService,
	})

	imageProxyController = imageproxy.NewImageProxyController(imageproxy.ImageProxyControllerConfig{
		AllowedBaseURL: config.PublicBaseURL,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	requestLogger := newRequestLoggerMiddleware()

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /", HandlerFunc: homeController.HomePage},
		{Path: "GET /photos", HandlerFunc: homeController.PhotosPage},
		{Path: "GET /contact", HandlerFunc: homeController.ContactPage},
		{Path: "GET /lineup", HandlerFunc: homeController.LineupPage},
		{Path: "GET /image", HandlerFunc: imageProxyController.OptimizeImage},

		{Path: "GET /api/photos", HandlerFunc: photosController.GetPhotos, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "OPTIONS /api/photos", HandlerFunc: photosController.Preflight},
		{Path: "/api/photos", HandlerFunc: api.MethodNotAllowed},

		{Path: "POST /api/contact", HandlerFunc: mailerController.ContactAction, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "OPTIONS /api/contact", HandlerFunc: mailerController.Preflight},
		{Path: "/api/contact", HandlerFunc: api.MethodNotAllowed},

		{Path: "POST /api/subscribe", HandlerFunc: mailerController.SubscribeAction, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "OPTIONS /api/subscribe", HandlerFunc: mailerController.Preflight},
		{Path: "/api/subscribe", HandlerFunc: api.MethodNotAllowed},

		{Path: "GET /api/lineup", HandlerFunc: lineupController.GetLineup, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "/api/lineup", HandlerFunc: api.MethodNotAllowed},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	slog.Info("server started")

	<-quit

	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func loadAwsConfig() (aws.Config, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.AwsRegion),
	}

	if config.AwsAccessKeyId != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AwsAccessKeyId, config.AwsSecretAccessKey, ""),
		))
	}

	return awsconfig.LoadDefaultConfig(ctx, options...)
}

func migrateDatabase() {
	var (
		err  error
		dirs []fs.DirEntry
		b    []byte
	)

	if dirs, err = sqlMigrationsFs.ReadDir("sql-migrations"); err != nil {
		panic(err)
	}

	for _, d := range dirs {
		if d.IsDir() {
			continue
		}

		if strings.HasPrefix(d.Name(), "commit") {
			if b, err = fs.ReadFile(sqlMigrationsFs, filepath.Join("sql-migrations", d.Name())); err != nil {
				panic(err)
			}

			if err = runSqlScript(b); err != nil {
				if !isIgnorableError(err) {
					panic(err)
				}
			}
		}
	}
}

func runSqlScript(script []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	_, err := db.Exec(ctx, string(script))
	return err
}

func isIgnorableError(err error) bool {
	if strings.Contains(err.Error(), "duplicate column") {
		return true
	}

	return false
}
