package booking

import "github.com/barbeariaclassica/agenda-api/internal/httperr"

// Stage representa o estado de uma tentativa de agendamento, do envio do
// formulário até o desfecho. Estado visível ao cliente, nunca persistido.
type Stage string

const (
	StageIdle             Stage = "idle"
	StageValidating       Stage = "validating"
	StageCheckingConflict Stage = "checking_conflict"
	StageCommitting       Stage = "committing"
	StageSucceeded        Stage = "succeeded"
	StageFailed           Stage = "failed"
)

var nextStages = map[Stage][]Stage{
	StageIdle:             {StageValidating},
	StageValidating:       {StageCheckingConflict, StageFailed},
	StageCheckingConflict: {StageCommitting, StageFailed},
	StageCommitting:       {StageSucceeded, StageFailed},
	// Estados terminais voltam a idle para a próxima tentativa.
	StageSucceeded: {StageIdle},
	StageFailed:    {StageIdle},
}

// Attempt acompanha uma tentativa de agendamento e valida as transições.
type Attempt struct {
	stage  Stage
	reason string
}

func NewAttempt() *Attempt {
	return &Attempt{stage: StageIdle}
}

func (a *Attempt) Stage() Stage {
	return a.stage
}

// FailureReason retorna o código de negócio que levou a StageFailed.
func (a *Attempt) FailureReason() string {
	return a.reason
}

// Advance move a tentativa para o próximo estado, rejeitando transições
// fora da máquina.
func (a *Attempt) Advance(to Stage) error {
	for _, allowed := range nextStages[a.stage] {
		if allowed == to {
			a.stage = to
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_stage_transition")
}

// Fail encerra a tentativa com o erro dado e devolve o mesmo erro, para
// uso em linha nos usecases.
func (a *Attempt) Fail(err error) error {
	a.stage = StageFailed
	if code, ok := httperr.BusinessCode(err); ok {
		a.reason = code
	}
	return err
}
