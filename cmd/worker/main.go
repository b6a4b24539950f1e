package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnendingLoop/OptidashOptimizer/internal/kafka"
	"github.com/UnendingLoop/OptidashOptimizer/internal/optimizer"
	"github.com/UnendingLoop/OptidashOptimizer/internal/settings"
	"github.com/UnendingLoop/OptidashOptimizer/internal/worker"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/config"
	wbfkafka "github.com/wb-go/wbf/kafka"
	"github.com/wb-go/wbf/retry"
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
	if err := zlog.SetLevel(logLevel(appConfig)); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// собираем воркфлоу и настройки процессора
	workflow := optimizer.NewFromConfig(appConfig)
	procSettings := settings.Load(appConfig.GetString)
	zlog.Logger.Info().Msg(workflow.Summary(procSettings))

	// ждем пока кафка раздуплится
	broker := appConfig.GetString("KAFKA_BROKER")
	if err := kafka.WaitKafkaReady(ctx, broker, 10*time.Second); err != nil {
		log.Println("Interrupted while waiting for Kafka:", err)
		return
	}

	// подключиться к кафке как читатель
	queue := make(chan kafkago.Message)
	retryStrategy := retry.Strategy{
		Attempts: 5,
		Delay:    2 * time.Second,
		Backoff:  1.5,
	}
	topic := appConfig.GetString("KAFKA_TOPIC")
	groupID := appConfig.GetString("KAFKA_GROUPID")
	cons := wbfkafka.NewConsumer([]string{broker}, topic, groupID)

	cons.StartConsuming(ctx, queue, retryStrategy)

	go worker.NewWorkerInstance(workflow, procSettings, queue, cons).StartWorker(ctx)

	// Waiting for interruption to stop context to start Graceful shutdown
	<-ctx.Done()

	shutdown(cons)
	log.Println("Exiting worker...")
}

func logLevel(appConfig *config.Config) string {
	if lvl := appConfig.GetString("LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}

func shutdown(cons *wbfkafka.Consumer) {
	log.Println("Interrupt received!!! Starting shutdown sequence...")

	// Closing Kafka connection:
	if err := cons.Close(); err != nil {
		log.Println("Failed to close Kafka-reader:", err)
		return
	}
	log.Println("Kafka-consumer connection closed.")
}
