package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Scan struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
	Location string `json:"location"`
}

// CarrierUpdate повторяет тело вебхука перевозчика.
type CarrierUpdate struct {
	OrderID       string `json:"order_id,omitempty"`
	AWB           string `json:"awb,omitempty"`
	CourierName   string `json:"courier_name"`
	CurrentStatus string `json:"current_status"`
	EDD           string `json:"edd,omitempty"`
	Scans         []Scan `json:"scans"`
}

var (
	couriers = []string{"Delhivery", "BlueDart", "Ekart", "XpressBees"}
	statuses = []string{"PICKED UP", "SHIPPED", "IN TRANSIT", "OUT FOR DELIVERY", "DELIVERED", "RTO INITIATED", "CANCELED"}
	cities   = []string{"Mumbai", "Delhi", "Bengaluru", "Pune", "Chennai"}
)

func randomAWB() string {
	return fmt.Sprintf("%d", 10000000000+rand.Int63n(89999999999))
}

func generateUpdate(orderNumbers []string) CarrierUpdate {
	status := statuses[rand.Intn(len(statuses))]
	upd := CarrierUpdate{
		AWB:           randomAWB(),
		CourierName:   couriers[rand.Intn(len(couriers))],
		CurrentStatus: status,
		EDD:           time.Now().AddDate(0, 0, rand.Intn(7)+1).Format("2006-01-02 15:04:05"),
		Scans: []Scan{{
			Date:     time.Now().Format("2006-01-02 15:04:05"),
			Activity: status,
			Location: cities[rand.Intn(len(cities))],
		}},
	}
	if len(orderNumbers) > 0 {
		upd.OrderID = orderNumbers[rand.Intn(len(orderNumbers))]
	}
	return upd
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "carrier-status-updates", "carrier updates topic")
	orders := flag.String("orders", "", "comma separated order numbers to target")
	interval := flag.Duration("interval", 2*time.Second, "delay between updates")
	flag.Parse()

	var orderNumbers []string
	if *orders != "" {
		orderNumbers = strings.Split(*orders, ",")
	}

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(*brokers, ",")...),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			upd := generateUpdate(orderNumbers)
			data, _ := json.Marshal(upd)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(upd.AWB), Value: data}); err != nil {
				log.Println("failed to write update:", err)
				continue
			}
			log.Println("carrier update generated", upd.OrderID, upd.AWB, upd.CurrentStatus)
		case <-ctx.Done():
			return
		}
	}
}
