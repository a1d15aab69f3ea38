package apa

const (
	opGenerateAccessToken = "GenerateAccessTokenMutation"
	opDivisionRosters     = "divisionRosters"
	opDivisionSchedule    = "divisionSchedule"
)

const generateAccessTokenMutation = `mutation GenerateAccessTokenMutation($refreshToken: String!) {
  generateAccessToken(refreshToken: $refreshToken) {
    accessToken
    __typename
  }
}`

const divisionRostersQuery = `query divisionRosters($id: Int!) {
  division(id: $id) {
    id
    teams {
      isBye
      ...rosterComponent
      location {
        id
        name
        address {
          id
          name
          __typename
        }
        __typename
      }
      __typename
    }
    __typename
  }
}

fragment rosterComponent on Team {
  id
  name
  number
  league {
    id
    slug
    __typename
  }
  division {
    id
    type
    __typename
  }
  roster {
    id
    memberNumber
    displayName
    matchesWon
    matchesPlayed
    ... on EightBallPlayer {
      pa
      ppm
      skillLevel
      __typename
    }
    ... on NineBallPlayer {
      pa
      ppm
      skillLevel
      __typename
    }
    member {
      id
      __typename
    }
    __typename
  }
  __typename
}`

const divisionScheduleQuery = `query divisionSchedule($id: Int!) {
  division(id: $id) {
    id
    teams {
      id
      name
      number
      isBye
      __typename
    }
    schedule {
      id
      description
      date
      weekOfPlay
      skip
      matches {
        id
        isBye
        status
        startTime
        results {
          homeAway
          points {
            total
            __typename
          }
          __typename
        }
        home {
          id
          name
          number
          __typename
        }
        away {
          id
          name
          number
          __typename
        }
        __typename
      }
      __typename
    }
    __typename
  }
}`
