package embedder_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aferrando/golbot/internal/adapters/embedder"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClientEmbed(t *testing.T) {
	Convey("Given an embeddings client against a fake Ollama server", t, func() {
		ctx := context.Background()

		Convey("When the server answers normally", func() {
			var gotPath, gotModel, gotPrompt string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				var req struct {
					Model  string `json:"model"`
					Prompt string `json:"prompt"`
				}
				_ = json.NewDecoder(r.Body).Decode(&req)
				gotModel = req.Model
				gotPrompt = req.Prompt
				_ = json.NewEncoder(w).Encode(map[string]any{"embedding": []float64{0.1, 0.2, 0.3}})
			}))
			defer srv.Close()

			client := embedder.NewClient(srv.URL, "all-minilm")
			vec, err := client.Embed(ctx, "¿quién tiene más goles?")

			Convey("Then the vector comes back and the request is well-formed", func() {
				So(err, ShouldBeNil)
				So(vec, ShouldResemble, []float64{0.1, 0.2, 0.3})
				So(gotPath, ShouldEqual, "/api/embeddings")
				So(gotModel, ShouldEqual, "all-minilm")
				So(gotPrompt, ShouldEqual, "¿quién tiene más goles?")
			})
		})

		Convey("When the server returns an error status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "model not found", http.StatusNotFound)
			}))
			defer srv.Close()

			client := embedder.NewClient(srv.URL, "missing-model")
			_, err := client.Embed(ctx, "pregunta")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "404")
			So(err.Error(), ShouldContainSubstring, "model not found")
		})

		Convey("When the server returns garbage", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			}))
			defer srv.Close()

			client := embedder.NewClient(srv.URL, "all-minilm")
			_, err := client.Embed(ctx, "pregunta")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "decode embeddings response")
		})

		Convey("When the server is unreachable", func() {
			client := embedder.NewClient("http://127.0.0.1:1", "all-minilm")

			_, err := client.Embed(ctx, "pregunta")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "call embeddings API")
		})

		Convey("When the context is already cancelled", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"embedding": []float64{1}})
			}))
			defer srv.Close()

			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			client := embedder.NewClient(srv.URL, "all-minilm")
			_, err := client.Embed(cancelled, "pregunta")
			So(err, ShouldNotBeNil)
		})
	})
}
