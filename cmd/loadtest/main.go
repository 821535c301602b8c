package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type options struct {
	target   string
	token    string
	rps      int
	duration time.Duration
	pods     int
	fellows  int
	prs      int
}

type seeded struct {
	batchID string
	podIDs  []string
	fellows []string
}

var httpc = &http.Client{Timeout: 10 * time.Second}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Seed a batch and hammer the read and analytics endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.token == "" {
				opts.token = os.Getenv("LOADTEST_TOKEN")
			}
			data, err := seed(opts)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			runAttack(opts, data)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.target, "target", "http://localhost:8080", "Base URL of the server")
	cmd.Flags().StringVar(&opts.token, "token", "", "Bearer token (defaults to $LOADTEST_TOKEN)")
	cmd.Flags().IntVar(&opts.rps, "rps", 20, "Requests per second")
	cmd.Flags().DurationVar(&opts.duration, "duration", time.Minute, "Attack duration")
	cmd.Flags().IntVar(&opts.pods, "pods", 4, "Pods to seed")
	cmd.Flags().IntVar(&opts.fellows, "fellows", 8, "Fellows per pod")
	cmd.Flags().IntVar(&opts.prs, "prs", 5, "PRs per fellow")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (o options) headers() http.Header {
	return http.Header{
		"Accept":        {"application/json"},
		"Content-Type":  {"application/json"},
		"Authorization": {"Bearer " + o.token},
	}
}

func postJSON(o options, path string, body, out any) (int, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequest(http.MethodPost, o.target+path, bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	req.Header = o.headers()

	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func seed(o options) (*seeded, error) {
	data := &seeded{batchID: fmt.Sprintf("load.%d", time.Now().Unix())}
	log.Printf("Seeding batch %s: pods=%d fellows/pod=%d prs/fellow=%d", data.batchID, o.pods, o.fellows, o.prs)

	status, err := postJSON(o, "/batches", map[string]string{"id": data.batchID, "name": "Load " + data.batchID}, nil)
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, fmt.Errorf("create batch returned %d", status)
	}

	now := time.Now().UTC()
	prNumber := 1
	for p := 1; p <= o.pods; p++ {
		var pod struct {
			Pod struct {
				ID string `json:"id"`
			} `json:"pod"`
		}
		status, err := postJSON(o, "/pods", map[string]string{
			"id":       fmt.Sprint(p),
			"name":     fmt.Sprintf("Pod %d", p),
			"batch_id": data.batchID,
		}, &pod)
		if err != nil {
			return nil, err
		}
		if status >= 300 {
			log.Printf("WARN create pod returned %d", status)
			continue
		}
		data.podIDs = append(data.podIDs, pod.Pod.ID)

		for f := 1; f <= o.fellows; f++ {
			var fellow struct {
				Fellow struct {
					ID string `json:"id"`
				} `json:"fellow"`
			}
			username := fmt.Sprintf("load-%d-%d", p, f)
			status, err := postJSON(o, "/fellows", map[string]string{
				"full_name": fmt.Sprintf("Load Fellow %d %d", p, f),
				"username":  username,
				"pod_id":    pod.Pod.ID,
			}, &fellow)
			if err != nil {
				return nil, err
			}
			if status >= 300 {
				log.Printf("WARN create fellow returned %d", status)
				continue
			}
			data.fellows = append(data.fellows, fellow.Fellow.ID)

			for i := 0; i < o.prs; i++ {
				created := now.AddDate(0, 0, -rand.Intn(30))
				repo := fmt.Sprintf("load/repo-%d", rand.Intn(6))
				state := "open"
				if rand.Intn(3) == 0 {
					state = "closed"
				}
				status, err := postJSON(o, "/prs", map[string]any{
					"repository": repo,
					"pr_number":  prNumber,
					"user_id":    fellow.Fellow.ID,
					"username":   username,
					"title":      fmt.Sprintf("Load PR %d", prNumber),
					"state":      state,
					"created_at": created,
					"commits": []map[string]any{
						{"sha": fmt.Sprintf("%s-%d-a", data.batchID, prNumber), "author_date": created},
						{"sha": fmt.Sprintf("%s-%d-b", data.batchID, prNumber), "author_date": now.AddDate(0, 0, -rand.Intn(10))},
					},
				}, nil)
				if err != nil {
					return nil, err
				}
				if status >= 300 {
					log.Printf("WARN create PR returned %d", status)
				}
				prNumber++
			}
		}
	}

	if len(data.podIDs) == 0 || len(data.fellows) == 0 {
		return nil, fmt.Errorf("nothing was seeded")
	}
	log.Printf("Seed completed: pods=%d fellows=%d prs=%d", len(data.podIDs), len(data.fellows), prNumber-1)
	return data, nil
}

// scope picks a random analytics scope among the seeded entities.
func (s *seeded) scope() (string, string) {
	switch rand.Intn(3) {
	case 0:
		return "batch", s.batchID
	case 1:
		return "pod", s.podIDs[rand.Intn(len(s.podIDs))]
	default:
		return "fellow", s.fellows[rand.Intn(len(s.fellows))]
	}
}

func makeTargeter(o options, s *seeded) vegeta.Targeter {
	headers := o.headers()
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.Body = nil
		t.Header = headers

		r := rand.Float64()
		kind, id := s.scope()
		switch {
		// 35% dashboard
		case r < 0.35:
			t.URL = fmt.Sprintf("%s/analytics/dashboard?type=%s&id=%s&days=30", o.target, kind, id)
		// 25% PR series
		case r < 0.60:
			t.URL = fmt.Sprintf("%s/analytics/prs?type=%s&id=%s&days=%d", o.target, kind, id, 1+rand.Intn(90))
		// 15% commit counts
		case r < 0.75:
			t.URL = fmt.Sprintf("%s/analytics/commits?type=%s&id=%s", o.target, kind, id)
		// 10% repo breakdown
		case r < 0.85:
			t.URL = o.target + "/analytics/prs-by-fellow"
		// 12% fellow PRs
		case r < 0.97:
			t.URL = fmt.Sprintf("%s/fellows/%s/prs", o.target, s.fellows[rand.Intn(len(s.fellows))])
		// 3% the full batch tree
		default:
			t.URL = fmt.Sprintf("%s/batches/%s", o.target, s.batchID)
		}
		return nil
	}
}

func runAttack(o options, s *seeded) {
	rate := vegeta.Rate{Freq: o.rps, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s at %d rps for %s", o.target, o.rps, o.duration)
	for res := range attacker.Attack(makeTargeter(o, s), rate, o.duration, "github-scout") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	if len(metrics.Errors) > 0 {
		fmt.Printf("Errors: %v\n", metrics.Errors)
	}
}
