// Package main (in api-subfolder) provides launch of the HTTP side: it queues images for the worker
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnendingLoop/OptidashOptimizer/internal/kafka"
	"github.com/UnendingLoop/OptidashOptimizer/internal/mwlogger"
	"github.com/UnendingLoop/OptidashOptimizer/internal/optimizer"
	"github.com/UnendingLoop/OptidashOptimizer/internal/service"
	"github.com/UnendingLoop/OptidashOptimizer/internal/settings"
	"github.com/UnendingLoop/OptidashOptimizer/internal/transport"
	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/ginext"
	wbfkafka "github.com/wb-go/wbf/kafka"
	"github.com/wb-go/wbf/zlog"
)

func main() {
	// инициализировать конфиг/ считать энвы
	appConfig := config.New()
	appConfig.EnableEnv("")
	if err := appConfig.LoadEnvFiles("./.env"); err != nil {
		log.Fatalf("Failed to load envs: %s\nExiting app...", err)
	}

	// стартуем логгер
	zlog.InitConsole()
	err := zlog.SetLevel("info")
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	// готовим заранее слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// API сам ничего не оптимизирует, клиент нужен только чтобы показать, доступен ли он
	clientAvailable := optimizer.NewUploader(appConfig.GetString) != nil

	// ждем пока кафка раздуплится
	broker := appConfig.GetString("KAFKA_BROKER")
	if err := kafka.WaitKafkaReady(ctx, broker, 10*time.Second); err != nil {
		log.Println("Interrupted while waiting for Kafka:", err)
		return
	}
	// подключиться к кафке как продюсер
	topic := appConfig.GetString("KAFKA_TOPIC")
	if err := kafka.InitKafkaTopics(ctx, broker, 10*time.Second, topic); err != nil {
		log.Println("Interrupted while creating Kafka topics:", err)
		return
	}
	pub := wbfkafka.NewProducer([]string{broker}, topic)

	// создаем экземпляр сервиса
	var svc OptimizeAPIService = service.NewOptimizeService(pub, settings.Load(appConfig.GetString), clientAvailable)
	// cоздаем экземпляр хендлера HTTP
	handlers := transport.NewOptimizeHandler(svc)
	// сетапим сервер
	mode := appConfig.GetString("GIN_MODE")
	engine := ginext.New(mode)

	engine.GET("/ping", handlers.SimplePinger)
	engine.GET("/summary", handlers.Summary)   // режим сжатия для админки
	engine.POST("/optimize", handlers.Enqueue) // постановка картинки в очередь

	srv := &http.Server{
		Addr:    ":" + appConfig.GetString("APP_PORT"),
		Handler: mwlogger.NewMWLogger(engine),
	}

	// Server launch
	go func() {
		log.Printf("Server running on http://localhost%s\n", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Println("Server gracefully stopping...")
			default:
				log.Printf("Server stopped: %v", err)
				stop()
			}
		}
	}()

	// ждем отмены контекста для запуска грейсфул закрытия сервера и кафки
	<-ctx.Done()

	shutdown(srv, pub)
	log.Println("Exiting API...")
}

func shutdown(srv *http.Server, pub *wbfkafka.Producer) {
	log.Println("Interrupt received!!! Starting shutdown sequence...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Failed to shutdown HTTP-server correctly:", err)
	}

	// Closing Kafka connection:
	if err := pub.Close(); err != nil {
		log.Println("Failed to close Kafka-writer:", err)
		return
	}
	log.Println("Kafka-producer connection closed.")
}
