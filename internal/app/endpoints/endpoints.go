package endpoints

// Endpoints collects every endpoint exposed by the service.
type Endpoints struct {
	SearchEndpoint
	DirectoryEndpoint
}

func MakeEndpoints(searchSvc SearchService, directorySvc DirectoryService) Endpoints {
	return Endpoints{
		SearchEndpoint:    MakeSearchEndpoint(searchSvc),
		DirectoryEndpoint: MakeDirectoryEndpoint(directorySvc),
	}
}
