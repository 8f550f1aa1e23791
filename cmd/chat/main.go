// Command chat is an interactive terminal client for the golbot QA
// endpoint. It posts each typed question to /chat and prints the answer
// with its evidence list.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/aferrando/golbot/internal/domain/model"
)

var serverURL = flag.String("server", "http://localhost:8000", "golbot server URL")

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nHasta pronto.")
		cancel()
		os.Exit(0)
	}()

	client := &http.Client{Timeout: 2 * time.Minute}

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	fmt.Println(boldGreen("⚽ golbot"))
	fmt.Printf("Servidor: %s\n", boldCyan(*serverURL))
	fmt.Println("Escribe tu pregunta y pulsa Enter. Escribe 'salir' o pulsa Ctrl+C para terminar.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(boldGreen("Tú: "))
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if strings.EqualFold(question, "salir") || strings.EqualFold(question, "exit") {
			break
		}

		resp, err := ask(ctx, client, *serverURL, question)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Println("Comprueba que el servidor golbot está en marcha.")
			continue
		}

		fmt.Printf("%s %s\n", boldCyan("golbot:"), resp.Answer)
		for _, src := range resp.Sources {
			fmt.Println(faint(fmt.Sprintf("  fuente: %s/%d (%.4f)", src.Table, src.ID, src.Score)))
		}
		fmt.Println()
	}
}

func ask(ctx context.Context, client *http.Client, server, question string) (model.Response, error) {
	body, err := json.Marshal(map[string]string{"question": question})
	if err != nil {
		return model.Response{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server+"/chat", bytes.NewReader(body))
	if err != nil {
		return model.Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := client.Do(req)
	if err != nil {
		return model.Response{}, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return model.Response{}, fmt.Errorf("server returned %d", httpResp.StatusCode)
	}
	var out model.Response
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return model.Response{}, err
	}
	return out, nil
}
