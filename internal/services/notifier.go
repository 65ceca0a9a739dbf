package services

import (
	"context"
	"fmt"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	"github.com/maxaizer/recruit-dashboard/internal/events"
	"github.com/maxaizer/recruit-dashboard/internal/logger"
	"github.com/maxaizer/recruit-dashboard/internal/pipeline"
	log "github.com/sirupsen/logrus"
)

type messageCreator interface {
	Create(ctx context.Context, message entities.Message) (*entities.Message, error)
}

// Notifier turns store events into messages of the notification feed.
type Notifier struct {
	bus      EventBus.Bus
	messages messageCreator
}

func NewNotifier(bus EventBus.Bus, messages messageCreator) (*Notifier, error) {
	n := &Notifier{bus: bus, messages: messages}

	subscriptions := map[string]any{
		events.PresentationCreatedTopic:       n.onPresentationCreated,
		events.PresentationStatusChangedTopic: n.onPresentationStatusChanged,
		events.CandidateCreatedTopic:          n.onCandidateCreated,
		events.JobRoleCreatedTopic:            n.onJobRoleCreated,
	}
	for topic, handler := range subscriptions {
		if err := bus.Subscribe(topic, handler); err != nil {
			return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}

	return n, nil
}

func (n *Notifier) onPresentationCreated(event events.PresentationCreated) {
	candidate, job := "A candidate", "a job role"
	if event.Candidate != nil {
		candidate = event.Candidate.Name
	}
	if event.JobRole != nil {
		job = event.JobRole.Title
	}

	n.post(entities.NewMessage(
		"New Presentation",
		fmt.Sprintf("%s was presented for %s", candidate, job),
		entities.MessageInfo,
		presentationLink(event.Presentation.ID),
	))
}

func (n *Notifier) onPresentationStatusChanged(event events.PresentationStatusChanged) {
	messageType := entities.MessageInfo
	switch event.To {
	case entities.StatusOffer, entities.StatusAccepted:
		messageType = entities.MessageSuccess
	case entities.StatusRejected:
		messageType = entities.MessageWarning
	}

	content := fmt.Sprintf("Presentation moved to %s", pipeline.Label(event.To))
	if event.CandidateName != "" && event.JobTitle != "" {
		content = fmt.Sprintf("%s moved to %s for %s", event.CandidateName, pipeline.Label(event.To), event.JobTitle)
	}

	n.post(entities.NewMessage("Presentation Update", content, messageType, presentationLink(event.Presentation.ID)))
}

func (n *Notifier) onCandidateCreated(event events.CandidateCreated) {
	n.post(entities.NewMessage(
		"New Candidate",
		fmt.Sprintf("%s was added to the candidate pool", event.Candidate.Name),
		entities.MessageInfo,
		&entities.MessageLink{Text: "View Profile", Url: "/candidates/" + event.Candidate.ID},
	))
}

func (n *Notifier) onJobRoleCreated(event events.JobRoleCreated) {
	n.post(entities.NewMessage(
		"New Job Role",
		fmt.Sprintf("%s position at %s has been posted", event.JobRole.Title, event.JobRole.Company),
		entities.MessageInfo,
		&entities.MessageLink{Text: "View Job", Url: "/jobs/" + event.JobRole.ID},
	))
}

func (n *Notifier) post(message entities.Message) {
	if _, err := n.messages.Create(context.Background(), message); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to post message %q: %v", message.Title, err)
	}
}

func presentationLink(id string) *entities.MessageLink {
	return &entities.MessageLink{Text: "View Presentation", Url: "/presentations/" + id}
}
