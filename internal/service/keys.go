package service

import "fmt"

// Per-user key namespace. Each user owns four logical keys: profile,
// balance, daily task state, and withdrawal history. Keys are written
// independently; there is no cross-key transaction.
func profileKey(userID string) string {
	return fmt.Sprintf("user:%s:profile", userID)
}

func balanceKey(userID string) string {
	return fmt.Sprintf("user:%s:balance", userID)
}

func tasksKey(userID string) string {
	return fmt.Sprintf("user:%s:tasks", userID)
}

func historyKey(userID string) string {
	return fmt.Sprintf("user:%s:withdraw_history", userID)
}
