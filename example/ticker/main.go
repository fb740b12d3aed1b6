package main

import (
	"log"
	"time"

	"github.com/shaovie/timerfd"
)

// Nonblocking ticker: first tick after 1s, then every 500ms, drained
// as a polled sequence. Read's ok result is the "item this step" bit.
func main() {
	t, err := timerfd.NewWithFlags(timerfd.ClockMonotonic, timerfd.Nonblock)
	if err != nil {
		log.Fatalln("timerfd_create:", err)
	}
	defer t.Close()

	its := timerfd.NewItimerSpec(500*time.Millisecond, time.Second)
	if err = t.SetTime(&its, nil); err != nil {
		log.Fatalln("settime:", err)
	}

	ticks := 0
	for ticks < 5 {
		n, ok, err := t.Read()
		if err != nil {
			log.Fatalln("read:", err)
		}
		if !ok { // nothing expired this step
			time.Sleep(50 * time.Millisecond)
			continue
		}
		ticks++
		log.Printf("tick %d (count=%d)", ticks, n)
	}

	var disarm timerfd.ItimerSpec
	if err = t.SetTime(&disarm, nil); err != nil {
		log.Fatalln("disarm:", err)
	}
	log.Println("disarmed")
}
