package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

type azurePhotoFetcher struct {
	client *azblob.Client
}

// NewAzurePhotoFetcher creates a PhotoFetcher backed by Azure blob storage.
// Photo URLs address the container in the path and the blob via the "blob"
// query parameter.
func NewAzurePhotoFetcher(accountName string, accountKey string) (PhotoFetcher, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, err
	}

	client, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net", accountName),
		credential,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &azurePhotoFetcher{client: client}, nil
}

func (s *azurePhotoFetcher) FetchPhoto(ctx context.Context, photoURL string) ([]byte, error) {
	parsedURL, err := url.Parse(photoURL)
	if err != nil {
		return nil, fmt.Errorf("invalid blob URL: %w", err)
	}
	if len(parsedURL.Path) < 2 {
		return nil, fmt.Errorf("blob URL missing container: %s", photoURL)
	}

	containerName := parsedURL.Path[1:] // Remove leading slash
	blobName := parsedURL.Query().Get("blob")
	if blobName == "" {
		return nil, fmt.Errorf("blob URL missing blob query parameter: %s", photoURL)
	}

	downloadResponse, err := s.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	retryReader := downloadResponse.Body
	defer retryReader.Close()

	return io.ReadAll(io.LimitReader(retryReader, maxPhotoBytes))
}
