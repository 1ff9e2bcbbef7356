package workers

import "sync"

type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers so they can be started together.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Pool fans submitted tasks across a fixed number of goroutines.
// Submission blocks while every worker is busy, so a batch producer is
// naturally throttled to the pool size. A Pool is for one batch: close
// it after the last Submit and do not reuse it.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
}

// NewPool starts size worker goroutines. Sizes below one are raised to
// one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}

	p := &Pool{tasks: make(chan func())}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}

	return p
}

// Submit hands a task to a free worker, blocking until one takes it.
// Nil tasks are ignored. Submit must not be called after Close.
func (p *Pool) Submit(task func()) {
	if task == nil {
		return
	}
	p.tasks <- task
}

// Close stops intake and blocks until every submitted task has finished.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
