package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barbeariaclassica/agenda-api/internal/models"
	"github.com/barbeariaclassica/agenda-api/internal/timezone"
)

// Data é o documento inteiro persistido. Toda escrita substitui o arquivo
// completo de forma atômica (temporário + rename), o equivalente do
// replace-on-write da lista inteira no armazenamento original.
type Data struct {
	Barbers      []models.Barber      `json:"barbers"`
	Appointments []models.Appointment `json:"appointments"`
	AuditLogs    []models.AuditLog    `json:"auditLogs"`
}

// Store é o armazenamento local em arquivo JSON. Um único mutex serializa
// todas as mutações: disciplina de escritor único, sem controle de
// concorrência multiusuário.
type Store struct {
	path string
	log  *zap.Logger

	mu   sync.RWMutex
	data Data
}

// Open carrega o arquivo de dados, criando-o com os barbeiros padrão
// quando ainda não existe.
func Open(path string, log *zap.Logger) (*Store, error) {
	s := &Store{path: path, log: log}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("arquivo de dados corrompido em %s: %w", path, err)
		}

	case errors.Is(err, fs.ErrNotExist):
		s.data = seedData()
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		log.Info("arquivo de dados criado com barbeiros padrão",
			zap.String("path", path),
			zap.Int("barbers", len(s.data.Barbers)),
		)

	default:
		return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
	}

	return s, nil
}

// seedData reproduz a carga inicial da aplicação: três barbeiros padrão
// quando o armazenamento nunca foi gravado.
func seedData() Data {
	now := timezone.Now()
	names := []string{"João Silva", "Pedro Oliveira", "Carlos Santos"}

	barbers := make([]models.Barber, 0, len(names))
	for _, name := range names {
		barbers = append(barbers, models.Barber{
			ID:        uuid.NewString(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return Data{
		Barbers:      barbers,
		Appointments: []models.Appointment{},
		AuditLogs:    []models.AuditLog{},
	}
}

// View executa fn com acesso de leitura ao documento. fn não pode reter
// referências aos slices após retornar.
func (s *Store) View(fn func(d *Data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// clone copia os três slices. fn muta o documento no lugar (inclusive
// campos de elementos existentes), então o snapshot de rollback precisa
// de cópias reais, não só dos cabeçalhos dos slices.
func (d Data) clone() Data {
	return Data{
		Barbers:      slices.Clone(d.Barbers),
		Appointments: slices.Clone(d.Appointments),
		AuditLogs:    slices.Clone(d.AuditLogs),
	}
}

// Update executa fn com acesso exclusivo ao documento e, se fn não
// retornar erro, persiste o documento inteiro atomicamente. Em caso de
// erro nada é gravado e a versão em memória é restaurada.
func (s *Store) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.data.clone()
	if err := fn(&s.data); err != nil {
		s.data = before
		return err
	}

	if err := s.persistLocked(); err != nil {
		s.data = before
		return err
	}
	return nil
}

func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("falha ao serializar dados: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("falha ao criar diretório de dados: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".agenda-*.json")
	if err != nil {
		return fmt.Errorf("falha ao criar arquivo temporário: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("falha ao gravar dados: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("falha ao fechar arquivo temporário: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("falha ao substituir %s: %w", s.path, err)
	}
	return nil
}
