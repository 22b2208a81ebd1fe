package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/rabbitmq"
	"dispatch/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := openDatabase(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	publisher, closePublisher := createPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	if configs.AutoDispatch {
		dispatchJob := app.CreateOrderDispatchJob(logger)
		if err := dispatchJob.Start(); err != nil {
			log.Fatalf("Failed to start order dispatch job: %v", err)
		}
		defer dispatchJob.Stop()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	return cmd.Config{
		HTTPPort:     os.Getenv("HTTP_PORT"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBSslMode:    os.Getenv("DB_SSLMODE"),
		AmqpURL:      os.Getenv("AMQP_URL"),
		AutoDispatch: os.Getenv("AUTO_DISPATCH") != "false",
	}
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

// createPublisher connects to RabbitMQ when AMQP_URL is set. Events are best
// effort, so a broker that is down at startup degrades to the no-op publisher
// instead of blocking the service.
func createPublisher(configs cmd.Config, logger *slog.Logger) (ports.OrderEventPublisher, func()) {
	if configs.AmqpURL == "" {
		return rabbitmq.NoopPublisher{}, func() {}
	}

	client, err := rabbitmq.Dial(configs.AmqpURL)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, order events disabled", "error", err)
		return rabbitmq.NoopPublisher{}, func() {}
	}
	return client, client.Close
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(httpin.Handlers{
		CreateCustomer:    app.CreateCreateCustomerCommandHandler(),
		CreateDriver:      app.CreateCreateDriverCommandHandler(),
		ChangeDriverState: app.CreateChangeDriverStatusCommandHandler(),
		CreateRestaurant:  app.CreateCreateRestaurantCommandHandler(),
		PlaceOrder:        app.CreatePlaceOrderCommandHandler(),
		AssignDriver:      app.CreateAssignDriverCommandHandler(),
		UpdateOrderStatus: app.CreateUpdateOrderStatusCommandHandler(),
		GetCustomers:      app.CreateGetCustomersQueryHandler(),
		GetDrivers:        app.CreateGetDriversQueryHandler(),
		GetRestaurants:    app.CreateGetRestaurantsQueryHandler(),
		GetOrders:         app.CreateGetOrdersQueryHandler(),
		GetOrder:          app.CreateGetOrderQueryHandler(),
		GetDashboardStats: app.CreateGetDashboardStatsQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
