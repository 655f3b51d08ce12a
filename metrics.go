package kitchen

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports the kitchen aggregates as gauges on every scrape.
type Collector struct {
	kitchen        *Kitchen
	dishes         *prometheus.Desc
	prepTimeSum    *prometheus.Desc
	avgPrepTime    *prometheus.Desc
	elaborate      *prometheus.Desc
	elaborateRatio *prometheus.Desc
	cuisine        *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(k *Kitchen, namespace string) *Collector {
	name := func(n string) string {
		return prometheus.BuildFQName(namespace, "kitchen", n)
	}
	return &Collector{
		kitchen:        k,
		dishes:         prometheus.NewDesc(name("dishes"), "Dishes currently in the kitchen.", nil, nil),
		prepTimeSum:    prometheus.NewDesc(name("prep_time_sum_minutes"), "Sum of preparation times of held dishes.", nil, nil),
		avgPrepTime:    prometheus.NewDesc(name("avg_prep_time_minutes"), "Average preparation time rounded to the nearest minute.", nil, nil),
		elaborate:      prometheus.NewDesc(name("elaborate_dishes"), "Held dishes with at least 5 ingredients and 60 minutes of preparation.", nil, nil),
		elaborateRatio: prometheus.NewDesc(name("elaborate_ratio_percent"), "Share of elaborate dishes in percent.", nil, nil),
		cuisine:        prometheus.NewDesc(name("cuisine_dishes"), "Held dishes per cuisine type.", []string{"cuisine"}, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.dishes
	ch <- c.prepTimeSum
	ch <- c.avgPrepTime
	ch <- c.elaborate
	ch <- c.elaborateRatio
	ch <- c.cuisine
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.kitchen.Stats()
	ch <- prometheus.MustNewConstMetric(c.dishes, prometheus.GaugeValue, float64(s.Dishes))
	ch <- prometheus.MustNewConstMetric(c.prepTimeSum, prometheus.GaugeValue, float64(s.PrepTimeSum))
	ch <- prometheus.MustNewConstMetric(c.avgPrepTime, prometheus.GaugeValue, float64(s.AvgPrepTime))
	ch <- prometheus.MustNewConstMetric(c.elaborate, prometheus.GaugeValue, float64(s.ElaborateCount))
	ch <- prometheus.MustNewConstMetric(c.elaborateRatio, prometheus.GaugeValue, s.ElaboratePercentage)
	for _, ct := range CuisineTypes() {
		ch <- prometheus.MustNewConstMetric(c.cuisine, prometheus.GaugeValue, float64(s.Cuisines[ct.String()]), ct.String())
	}
}
