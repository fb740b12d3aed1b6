package main

import (
	"log"
	"time"

	"github.com/shaovie/timerfd"
)

// Blocking one-shot: arm a 2s deadline and let Read park until it
// fires.
func main() {
	t, err := timerfd.New(timerfd.ClockMonotonic)
	if err != nil {
		log.Fatalln("timerfd_create:", err)
	}
	defer t.Close()

	its := timerfd.Seconds(2)
	if err = t.SetTime(&its, nil); err != nil {
		log.Fatalln("settime:", err)
	}

	log.Println("armed, waiting...")
	start := time.Now()
	n, _, err := t.Read()
	if err != nil {
		log.Fatalln("read:", err)
	}
	log.Printf("expired %d time(s) after %v", n, time.Since(start))
}
