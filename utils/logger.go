package utils

import (
	"log"
	"os"
)

// InitLogger initializes the application logger.
func InitLogger() *log.Logger {
	return log.New(os.Stdout, "[Rate That Class] ", log.LstdFlags|log.LUTC)
}
