package cache

import "fmt"

func MakeSessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func MakeRateLimitKey(clientIP string) string {
	return fmt.Sprintf("ratelimit:%s", clientIP)
}
