package exthashmap

import (
	"github.com/prometheus/client_golang/prometheus"
)

// statsSource - Interface over the engine counters needed by the metric collectors
type statsSource interface {
	GlobalDepth() int64
	DirectoryLength() int64
	NumBuckets() int64
	Records() int64
	BucketAccesses() int64
	Splits() int64
	DirectoryDoublings() int64
}

// registerMetrics - Registers gauge and counter functions over the engine's diagnostic counters with
// the given registerer. The collectors read the live counters on scrape, nothing is sampled or stored
// on the index side.
func registerMetrics(source statsSource, registerer prometheus.Registerer) {
	registerer.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "exthashmap",
			Name:      "global_depth",
			Help:      "Number of low hash bits used to index the directory.",
		}, func() float64 { return float64(source.GlobalDepth()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "exthashmap",
			Name:      "directory_slots",
			Help:      "Number of directory slots.",
		}, func() float64 { return float64(source.DirectoryLength()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "exthashmap",
			Name:      "buckets",
			Help:      "Number of distinct buckets in the bucket store.",
		}, func() float64 { return float64(source.NumBuckets()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "exthashmap",
			Name:      "records",
			Help:      "Number of distinct keys stored.",
		}, func() float64 { return float64(source.Records()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "exthashmap",
			Name:      "bucket_accesses_total",
			Help:      "Number of bucket lookups performed.",
		}, func() float64 { return float64(source.BucketAccesses()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "exthashmap",
			Name:      "splits_total",
			Help:      "Number of bucket splits performed.",
		}, func() float64 { return float64(source.Splits()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "exthashmap",
			Name:      "directory_doublings_total",
			Help:      "Number of times the directory doubled in length.",
		}, func() float64 { return float64(source.DirectoryDoublings()) }),
	)
}
