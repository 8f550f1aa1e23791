package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			enabledOpt := WithEnabled(true)
			registryOpt := WithRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(enabledOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a fresh registry", func() {
			manager := NewManager(WithRegistry(prometheus.NewRegistry()))

			So(manager, ShouldNotBeNil)
		})

		Convey("When creating with custom options", func() {
			manager := NewManager(
				WithNamespace("testns"),
				WithSubsystem("testsub"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithEnabled(true),
				WithRegistry(prometheus.NewRegistry()),
			)

			So(manager, ShouldNotBeNil)
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		So(GetRegistry(), ShouldNotBeNil)

		Convey("When recording through the package helpers", func() {
			// None of these may panic, with or without prior traffic.
			RecordQuestion()
			RecordAnswer("superlative")
			RecordAnswer("fallback")
			RecordStageLatency("retrieval", 12.5)
			RecordStageError("facts")
			RecordRetrievalChunks(3)
			RecordMalformedRow()
			RecordStoreError()
			RecordEmbedderError()
			RecordHTTPRequest("chat", "POST", "200")
			RecordHTTPRequestDuration("chat", "POST", "200", 4.2)

			Convey("Then the registry gathers them", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)

				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["golbot_pipeline_questions_total"], ShouldBeTrue)
				So(names["golbot_pipeline_answers_total"], ShouldBeTrue)
			})
		})
	})
}
