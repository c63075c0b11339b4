package all

import (
	_ "github.com/bornholm/menud/internal/source/file"
	_ "github.com/bornholm/menud/internal/source/s3"
)
