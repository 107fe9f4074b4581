package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/fastprodman/cashinreward/internal/ledger"
	"github.com/fastprodman/cashinreward/internal/rules"
)

// Tasks lists catalog tasks with their status for the current session.
func (s *Service) Tasks() ([]TaskView, error) {
	_, err := s.store.Current()
	if err != nil {
		return nil, fmt.Errorf("tasks: %w", err)
	}

	out := make([]TaskView, 0, len(s.catalog.Tasks))
	for _, t := range s.catalog.Tasks {
		status := TaskAvailable
		if t.Completed || s.store.TaskDone(t.ID) {
			status = TaskCompleted
		}

		out = append(out, TaskView{ID: t.ID, Title: t.Title, Reward: t.Reward, Status: status})
	}

	return out, nil
}

// CompleteTask credits a task's reward once per session.
func (s *Service) CompleteTask(ctx context.Context, taskID string) (Receipt, error) {
	u, err := s.store.Current()
	if err != nil {
		return Receipt{}, fmt.Errorf("complete task: %w", err)
	}

	task, ok := s.catalog.Task(taskID)
	if !ok {
		return Receipt{}, fmt.Errorf("complete task %q: %w", taskID, ErrTaskNotFound)
	}

	if task.Completed || s.store.TaskDone(task.ID) {
		return Receipt{}, fmt.Errorf("complete task %q: %w", taskID, ledger.ErrTaskDone)
	}

	var tx ledger.Transaction

	err = s.submit(ctx, flowTask, func() error {
		merr := s.store.MarkTaskDone(u.ID, task.ID)
		if merr != nil {
			return merr
		}

		var aerr error
		tx, aerr = s.store.ApplyChecked(u.ID, nil, ledger.TxInput{
			Type:        ledger.TxTask,
			Amount:      task.Reward,
			Status:      ledger.StatusCompleted,
			Description: task.Title + " Completed",
		})

		return aerr
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("complete task %q: %w", taskID, err)
	}

	s.log.InfoContext(ctx, "task completed", "tx_id", tx.ID, "task_id", task.ID, "reward", task.Reward)
	s.record(ctx, tx)

	return s.receipt(tx), nil
}

type TaskChannelRequest struct {
	rules.TaskChannel
	Description string
}

// AddTaskChannel accepts a channel for users to join. Creation is simulated:
// affordability is checked but nothing is debited.
func (s *Service) AddTaskChannel(ctx context.Context, req TaskChannelRequest) (TaskListing, error) {
	u, err := s.store.Current()
	if err != nil {
		return TaskListing{}, fmt.Errorf("add task channel: %w", err)
	}

	cost, err := s.policy.TaskChannel(req.TaskChannel, u.Balance)
	if err != nil {
		return TaskListing{}, fmt.Errorf("add task channel: %w", err)
	}

	err = s.submit(ctx, flowTaskChannel, func() error { return nil })
	if err != nil {
		return TaskListing{}, fmt.Errorf("add task channel: %w", err)
	}

	listing := TaskListing{
		ID:           "TSK" + ledger.Token(9),
		ChannelName:  strings.TrimSpace(req.ChannelName),
		ChannelLink:  strings.TrimSpace(req.ChannelLink),
		RewardAmount: req.RewardAmount,
		TotalJoins:   req.TotalJoins,
		TotalCost:    cost,
		Description:  strings.TrimSpace(req.Description),
	}

	s.log.InfoContext(ctx, "task channel added", "listing_id", listing.ID, "cost", cost)

	return listing, nil
}

type AdRequest = rules.Ad

// PostAd accepts an ad campaign. Like AddTaskChannel nothing is debited.
func (s *Service) PostAd(ctx context.Context, req AdRequest) (AdListing, error) {
	u, err := s.store.Current()
	if err != nil {
		return AdListing{}, fmt.Errorf("post ad: %w", err)
	}

	err = s.policy.Ad(req, u.Balance)
	if err != nil {
		return AdListing{}, fmt.Errorf("post ad: %w", err)
	}

	err = s.submit(ctx, flowAd, func() error { return nil })
	if err != nil {
		return AdListing{}, fmt.Errorf("post ad: %w", err)
	}

	adType := req.Type
	if adType == "" {
		adType = rules.AdBanner
	}

	listing := AdListing{
		ID:             "AD" + ledger.Token(9),
		Title:          strings.TrimSpace(req.Title),
		Type:           adType,
		Budget:         req.Budget,
		DurationDays:   req.DurationDays,
		TargetLink:     strings.TrimSpace(req.TargetLink),
		EstimatedReach: req.Budget * reachPerUnit,
	}

	s.log.InfoContext(ctx, "ad posted", "listing_id", listing.ID, "budget", req.Budget)

	return listing, nil
}
