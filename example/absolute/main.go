package main

import (
	"log"
	"time"

	"github.com/shaovie/timerfd"
)

// Absolute deadline on the wall clock: fire at the next whole second.
func main() {
	t, err := timerfd.New(timerfd.ClockRealtime)
	if err != nil {
		log.Fatalln("timerfd_create:", err)
	}
	defer t.Close()

	deadline := time.Now().Truncate(time.Second).Add(time.Second)
	its := timerfd.Nanoseconds(deadline.UnixNano())
	if err = t.SetTimeWithFlags(timerfd.Abstime, &its, nil); err != nil {
		log.Fatalln("settime:", err)
	}

	log.Println("armed for", deadline.Format(time.RFC3339Nano))
	if _, _, err = t.Read(); err != nil {
		log.Fatalln("read:", err)
	}
	log.Println("fired at", time.Now().Format(time.RFC3339Nano))
}
