/*
Package worker_pool
Structure to facilitate with the worker pool pattern
https://gobyexample.com/worker-pools

Usage:

	type Task struct {
		event *tnyuapi.Event
	}

	func (task Task) Run(send func(string), abort func()) {
		send(fmt.Sprintf("Fetching venue of %s", task.event))
		venue, err := task.event.Venue()
		if err != nil {
			send(fmt.Sprintf("%s: %s", task.event, err))
			return
		}
		send(fmt.Sprintf("%s takes place at %s", task.event, venue))
	}

	func main() {
		pool := worker_pool.New(5, len(events))
		for _, event := range events {
			pool.Add(Task{event})
		}
		pool.Start()
		<-pool.Wait()
	}

All tasks must be added before 'Start'. Each task gets a portion of an output
that gets updated while the workers are running (using
[uilive](https://github.com/gosuri/uilive)) when stdout is a terminal. Each
invocation of 'send' replaces the portion of the output dedicated to the task.
When stdout is not a terminal, every message is printed on its own line
instead.

Calling 'abort' will make sure the workers will not pick up any new tasks.
However, tasks that are already in progress will continue. After the pool is
done, you can check IsAborted to see if any of the tasks aborted.
*/
package worker_pool

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
)

type Task interface {
	Run(send func(string), abort func())
}

type taskContainer_t struct {
	i    int
	task Task
}

type message_t struct {
	i    int
	body string
}

type Pool struct {
	numWorkers     int
	taskChannel    chan taskContainer_t
	innerWaitGroup sync.WaitGroup
	outerWaitGroup sync.WaitGroup
	counter        int
	messages       []string
	messageChannel chan message_t
	out            io.Writer
	live           bool
	aborted        atomic.Bool
}

func New(numWorkers, numTasks int) *Pool {
	var pool Pool
	if numWorkers < 1 {
		numWorkers = 1
	}
	pool.numWorkers = numWorkers
	pool.taskChannel = make(chan taskContainer_t, numTasks)
	pool.messages = make([]string, numTasks)
	pool.messageChannel = make(chan message_t)
	pool.out = os.Stdout
	pool.live = isatty.IsTerminal(os.Stdout.Fd())
	return &pool
}

// SetOutput redirects the progress messages. With live set, the output is
// redrawn in place.
func (pool *Pool) SetOutput(out io.Writer, live bool) {
	pool.out = out
	pool.live = live
}

func (pool *Pool) Add(task Task) {
	pool.innerWaitGroup.Add(1)
	pool.taskChannel <- taskContainer_t{pool.counter, task}
	pool.counter += 1
}

func (pool *Pool) Start() {
	close(pool.taskChannel)

	var writer *uilive.Writer
	if pool.live {
		writer = uilive.New()
		writer.Out = pool.out
		writer.Start()
	}
	pool.outerWaitGroup.Add(1)

	for i := 0; i < pool.numWorkers; i++ {
		go func() {
			for taskContainer := range pool.taskChannel {
				if !pool.IsAborted() {
					i := taskContainer.i
					send := func(body string) {
						pool.messageChannel <- message_t{i, body}
					}
					taskContainer.task.Run(send, pool.abort)
				}
				pool.innerWaitGroup.Done()
			}
		}()
	}

	waitChannel := make(chan struct{})
	go func() {
		pool.innerWaitGroup.Wait()
		waitChannel <- struct{}{}
	}()

	go func() {
		exitfor := false
		for !exitfor {
			select {
			case msg := <-pool.messageChannel:
				pool.messages[msg.i] = msg.body
				if writer == nil {
					fmt.Fprintln(pool.out, msg.body)
					continue
				}
				var tmpMessages []string
				for _, line := range pool.messages {
					if len(line) > 0 {
						tmpMessages = append(tmpMessages, line)
					}
				}
				fmt.Fprintln(writer, strings.Join(tmpMessages, "\n"))
				writer.Flush()
			case <-waitChannel:
				exitfor = true
				if writer != nil {
					writer.Stop()
				}
				pool.outerWaitGroup.Done()
			}
		}
	}()
}

func (pool *Pool) abort() {
	pool.aborted.Store(true)
}

func (pool *Pool) IsAborted() bool {
	return pool.aborted.Load()
}

// Messages returns the last message every task sent, in the order the tasks
// were added. Only meaningful after Wait.
func (pool *Pool) Messages() []string {
	return pool.messages
}

func (pool *Pool) Wait() <-chan struct{} {
	waitChannel := make(chan struct{})
	go func() {
		pool.outerWaitGroup.Wait()
		waitChannel <- struct{}{}
	}()
	return waitChannel
}
