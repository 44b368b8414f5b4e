package utils

import (
	"bytes"
	"fmt"
	"os"

	storage "github.com/supabase-community/storage-go"
)

const storageBucket = "content-pipeline"

func storageClient() *storage.Client {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	return storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)
}

func publicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", os.Getenv("SUPABASE_URL"), storageBucket, objectPath)
}

// UploadIngestXML stages one raw OAI-PMH response page under ingest/.
// The stored copy is an audit trail for reprocessing, mirroring what the
// pipeline keeps around for each harvested day.
func UploadIngestXML(data []byte, name string) (string, error) {
	objectPath := fmt.Sprintf("ingest/%s.xml", name)
	contentType := "application/xml"

	options := storage.FileOptions{
		ContentType: &contentType,
	}

	_, err := storageClient().UploadFile(storageBucket, objectPath, bytes.NewBuffer(data), options)
	if err != nil {
		return "", err
	}

	return publicURL(objectPath), nil
}

// UploadAudioToSupabase uploads synthesized episode audio.
// Path: audio/<filename>.mp3
func UploadAudioToSupabase(data []byte, filename string) (string, error) {
	objectPath := fmt.Sprintf("audio/%s", filename)
	contentType := "audio/mpeg"

	options := storage.FileOptions{
		ContentType: &contentType,
	}

	_, err := storageClient().UploadFile(storageBucket, objectPath, bytes.NewBuffer(data), options)
	if err != nil {
		return "", err
	}

	return publicURL(objectPath), nil
}
