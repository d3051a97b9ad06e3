package service

import (
	"context"
	"fmt"
	"os"
	"time"
)

type HealthStatus string

const (
	StatusOK          HealthStatus = "ok"
	StatusDegraded    HealthStatus = "degraded"
	StatusUnavailable HealthStatus = "unavailable"
)

type HealthCheckResponse struct {
	Status    HealthStatus      `json:"status"`
	Checks    map[string]string `json:"checks"`
	Timestamp time.Time         `json:"timestamp"`
}

// Check é uma verificação nomeada. Run devolve um detalhe curto quando passa.
// Falha de uma verificação Critical deixa o serviço indisponível; as outras
// só o degradam.
type Check struct {
	Name     string
	Critical bool
	Run      func(ctx context.Context) (string, error)
}

type HealthService struct {
	checks []Check
}

// NewHealthService verifica o log de comentários e o diretório para onde o
// multipart do echo despeja uploads grandes (spillDir, ou os.TempDir() se vazio).
// Verificações extra, como a dos templates, vêm de fora.
func NewHealthService(repo CommentRepository, spillDir string, extra ...Check) *HealthService {
	if spillDir == "" {
		spillDir = os.TempDir()
	}
	checks := []Check{
		{
			Name:     "comments",
			Critical: true,
			Run: func(ctx context.Context) (string, error) {
				n, err := repo.CountComments(ctx)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("ok (%d comentários)", n), nil
			},
		},
		{
			Name: "upload_spill",
			Run: func(context.Context) (string, error) {
				if err := checkSpillDir(spillDir); err != nil {
					return "", err
				}
				return "ok (" + spillDir + ")", nil
			},
		},
	}
	return &HealthService{checks: append(checks, extra...)}
}

func (s *HealthService) CheckHealth(ctx context.Context) HealthCheckResponse {
	checks := make(map[string]string, len(s.checks))
	aggregatedStatus := StatusOK

	for _, c := range s.checks {
		detail, err := c.Run(ctx)
		if err == nil {
			checks[c.Name] = detail
			continue
		}
		checks[c.Name] = "error: " + err.Error()
		switch {
		case c.Critical:
			aggregatedStatus = StatusUnavailable
		case aggregatedStatus == StatusOK:
			aggregatedStatus = StatusDegraded
		}
	}

	return HealthCheckResponse{
		Status:    aggregatedStatus,
		Checks:    checks,
		Timestamp: time.Now(),
	}
}

// checkSpillDir grava um ficheiro pequeno como o multipart faria com um upload
// acima do limite de memória.
func checkSpillDir(dir string) error {
	f, err := os.CreateTemp(dir, "multipart-")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write([]byte("xss-labs")); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
