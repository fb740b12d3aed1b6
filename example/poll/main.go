package main

import (
	"log"
	"time"

	"github.com/Yonle/go-epoll"
	"golang.org/x/sys/unix"

	"github.com/shaovie/timerfd"
)

// Event-loop integration: the handle only lends out its descriptor,
// epoll tells us when to read.
func main() {
	t, err := timerfd.NewWithFlags(timerfd.ClockMonotonic, timerfd.Nonblock|timerfd.Cloexec)
	if err != nil {
		log.Fatalln("timerfd_create:", err)
	}
	defer t.Close()

	e, err := epoll.NewInstance(0)
	if err != nil {
		log.Fatalln("epoll_create1:", err)
	}

	ev := epoll.MakeEvent(t.Fd(), unix.EPOLLIN)
	if err = e.Add(t.Fd(), ev); err != nil {
		log.Fatalln("epoll_ctl:", err)
	}

	its := timerfd.NewItimerSpec(time.Second, time.Second)
	if err = t.SetTime(&its, nil); err != nil {
		log.Fatalln("settime:", err)
	}

	events := make([]unix.EpollEvent, 8)
	fired := 0
	for fired < 5 {
		n, err := e.Wait(events, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			log.Fatalln("epoll_wait:", err)
		}
		for i := 0; i < n; i++ {
			if int(events[i].Fd) != t.Fd() {
				continue
			}
			// drain until the no-data step
			for {
				c, ok, err := t.Read()
				if err != nil {
					log.Fatalln("read:", err)
				}
				if !ok {
					break
				}
				fired++
				log.Printf("timer fired (count=%d)", c)
			}
		}
	}
}
