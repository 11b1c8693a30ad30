package services

import (
	"context"
	"sync"

	"leadharvest/internal/models"
)

// ScrapePool bounds how many scrapes run at once. Each HTTP request submits
// one job and blocks for its reply; jobs beyond the worker count queue up so
// a burst of slow scrapes cannot exhaust provider quota or the process.
type ScrapePool struct {
	service *ScrapeService
	jobs    chan scrapeJob
	wg      sync.WaitGroup
}

type scrapeJob struct {
	ctx        context.Context
	query      string
	location   string
	maxResults int
	reply      chan scrapeResult
}

type scrapeResult struct {
	leads []models.Lead
	err   error
}

func NewScrapePool(service *ScrapeService, workers int) *ScrapePool {
	if workers <= 0 {
		workers = 4
	}
	p := &ScrapePool{
		service: service,
		jobs:    make(chan scrapeJob),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *ScrapePool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		leads, err := p.service.ScrapeLeads(job.ctx, job.query, job.location, job.maxResults)
		job.reply <- scrapeResult{leads: leads, err: err}
	}
}

// Scrape submits one scrape and waits for its result.
func (p *ScrapePool) Scrape(ctx context.Context, query, location string, maxResults int) ([]models.Lead, error) {
	reply := make(chan scrapeResult, 1)
	p.jobs <- scrapeJob{ctx: ctx, query: query, location: location, maxResults: maxResults, reply: reply}
	res := <-reply
	return res.leads, res.err
}

// Close stops accepting jobs and waits for in-flight scrapes to finish.
func (p *ScrapePool) Close() {
	close(p.jobs)
	p.wg.Wait()
}
